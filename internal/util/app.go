package util

func GetAppName() string {
	return "DesignDeck"
}
