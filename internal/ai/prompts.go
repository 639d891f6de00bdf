package ai

import "fmt"

// Prompt builders for the design endpoints. Each returns a ready
// CompletionRequest so the controller only supplies project context.

const analyzeSystemPrompt = `You are an expert interior designer and architect with 20+ years of experience.
You provide comprehensive design analysis including:
- Space planning and layout optimization
- Material and finish recommendations
- Color palette suggestions
- Lighting design
- Budget-conscious alternatives
- Sustainability considerations
- Current design trends

Provide detailed, actionable recommendations.`

func AnalyzePrompt(projectName, description, fileContext string) CompletionRequest {
	if description == "" {
		description = "No description provided"
	}
	if fileContext == "" {
		fileContext = "No files uploaded yet."
	}

	userPrompt := fmt.Sprintf(`Please analyze this interior design project:

Project Name: %s
Description: %s

%s

Provide a comprehensive design analysis covering:
1. Overall Design Assessment
2. Space Planning Recommendations
3. Material & Finish Suggestions
4. Color Palette Recommendations
5. Lighting Design Ideas
6. Budget Optimization Tips
7. Next Steps and Priorities

Format your response in a clear, professional manner with specific, actionable recommendations.`, projectName, description, fileContext)

	return CompletionRequest{
		SystemPrompt: analyzeSystemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    1500,
		Temperature:  0.7,
	}
}

func ColorPalettePrompt(projectName, description, style, roomType string) CompletionRequest {
	if description == "" {
		description = "No description"
	}

	userPrompt := fmt.Sprintf(`As an expert color consultant, create a professional color palette for a %s style %s.

Project: %s
Description: %s

Provide:
1. Primary Color (with hex code)
2. Secondary Color (with hex code)
3. Accent Color (with hex code)
4. Neutral/Background Color (with hex code)
5. Brief explanation of why these colors work together
6. Application suggestions (where to use each color)

Format each color as: Color Name (#HEXCODE) - Usage description`, style, roomType, projectName, description)

	return CompletionRequest{
		SystemPrompt: "You are an expert color consultant and interior designer.",
		UserPrompt:   userPrompt,
		MaxTokens:    800,
		Temperature:  0.8,
	}
}

func MaterialPrompt(projectName, description, budgetLevel string, sustainability bool) CompletionRequest {
	if description == "" {
		description = "No description"
	}
	sustainabilityLabel := "No"
	if sustainability {
		sustainabilityLabel = "Yes"
	}

	userPrompt := fmt.Sprintf(`As an expert in materials and finishes, recommend materials for this interior design project:

Project: %s
Description: %s
Budget Level: %s
Sustainability Priority: %s

Provide specific recommendations for:
1. Flooring (2-3 options with pros/cons)
2. Wall Finishes (2-3 options)
3. Countertops/Surfaces (2-3 options)
4. Cabinetry/Millwork (2-3 options)
5. Hardware & Fixtures (style recommendations)

For each material, include:
- Material name and type
- Approximate price range
- Durability rating
- Maintenance requirements
- Aesthetic qualities
- Sustainability notes (if applicable)`, projectName, description, budgetLevel, sustainabilityLabel)

	return CompletionRequest{
		SystemPrompt: "You are an expert in interior design materials and finishes.",
		UserPrompt:   userPrompt,
		MaxTokens:    1200,
		Temperature:  0.7,
	}
}

func CostEstimatePrompt(projectName, description string, squareFootage float64, scope, location string) CompletionRequest {
	if description == "" {
		description = "No description"
	}

	userPrompt := fmt.Sprintf(`As a construction cost estimator and project manager, provide a detailed budget estimate for:

Project: %s
Description: %s
Square Footage: %g sq ft
Scope: %s
Location: %s

Provide a detailed budget breakdown including:
1. Design & Planning (architect, designer fees)
2. Materials (flooring, fixtures, finishes)
3. Labor & Installation
4. Permits & Inspections
5. Contingency (10-20%%)

For each category:
- Estimated cost range (low-high)
- Key factors affecting cost
- Cost-saving alternatives
- Priority level (must-have vs. nice-to-have)

Also include:
- Total estimated budget range
- Timeline estimate
- Money-saving tips
- Value engineering suggestions`, projectName, description, squareFootage, scope, location)

	return CompletionRequest{
		SystemPrompt: "You are an expert construction cost estimator and project manager.",
		UserPrompt:   userPrompt,
		MaxTokens:    1500,
		Temperature:  0.6,
	}
}

func QuickSuggestionPrompt(question string) CompletionRequest {
	return CompletionRequest{
		SystemPrompt: "You are an expert interior designer providing quick, practical design advice.",
		UserPrompt:   question,
		MaxTokens:    500,
		Temperature:  0.7,
	}
}
