package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// OutputSchema describes the JSON object a prompt asks the model to return.
// Every field is a string or, with List, an array of strings.
type OutputSchema struct {
	Name   string
	Fields []SchemaField
}

// SchemaField is one property of an OutputSchema.
type SchemaField struct {
	Name        string
	Description string
	Required    bool
	List        bool
}

func (f SchemaField) typeHint() string {
	if f.List {
		return `["string"]`
	}
	return `"string"`
}

// BuildStructuredPrompt appends the output contract for schema to task.
func BuildStructuredPrompt(task string, schema OutputSchema) string {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(task))
	sb.WriteString("\n\nReturn ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		fmt.Fprintf(&sb, "  %q: %s", field.Name, field.typeHint())
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\nReturn ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

// genaiSchema converts s into a Gemini response schema.
func (s OutputSchema) genaiSchema() *genai.Schema {
	out := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(s.Fields)),
	}
	for _, f := range s.Fields {
		prop := &genai.Schema{Type: genai.TypeString, Description: f.Description}
		if f.List {
			prop = &genai.Schema{
				Type:        genai.TypeArray,
				Description: f.Description,
				Items:       &genai.Schema{Type: genai.TypeString},
			}
		}
		out.Properties[f.Name] = prop
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}

// LinkedInPostSchema is the output contract for generated LinkedIn posts.
func LinkedInPostSchema() OutputSchema {
	return OutputSchema{
		Name: "LinkedInPost",
		Fields: []SchemaField{
			{Name: "post_text", Description: "The full post body, ready to publish", Required: true},
			{Name: "image_caption", Description: "Short caption for an accompanying image; empty if no image"},
			{Name: "hashtags", Description: "3 to 5 hashtags without the # sign", Required: true, List: true},
		},
	}
}
