package constant

type FileType string

const (
	FileTypePdf   FileType = "pdf"
	FileTypeExcel FileType = "excel"
)

// Extensions accepted by project file upload.
var AllowedUploadExtensions = map[string]FileType{
	"pdf":  FileTypePdf,
	"xls":  FileTypeExcel,
	"xlsx": FileTypeExcel,
}
