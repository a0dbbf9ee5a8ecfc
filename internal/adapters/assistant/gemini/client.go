package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"petpal-lite/internal/ports/assistant"
)

const DefaultModel = "gemini-2.5-flash"

// Client implementa el puerto assistant contra la API de Gemini.
type Client struct {
	gc    *genai.Client
	model string
}

// New crea el cliente. httpClient es opcional (para timeout/transport propios).
func New(ctx context.Context, apiKey, model string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	return &Client{gc: gc, model: model}, nil
}

func (c *Client) GenerateRoutine(ctx context.Context, p assistant.PetContext) ([]assistant.SuggestedItem, error) {
	prompt := fmt.Sprintf(
		"Generate a custom daily pet schedule for a %s that is %s old and weighs %s. "+
			"The schedule should include feeding, water, walk, medicine, and sleep times. "+
			"Times must be in 24h HH:MM format.",
		p.Breed, p.Age, p.Weight,
	)

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"time":     {Type: genai.TypeString, Description: "Time of the activity in 24h HH:MM format"},
					"activity": {Type: genai.TypeString, Description: "Name of the activity (e.g., Breakfast)"},
					"details":  {Type: genai.TypeString, Description: "Details about the activity"},
					"icon":     {Type: genai.TypeString, Description: "An icon name from: food, water, walk, medicine, sleep"},
				},
				Required: []string{"time", "activity", "details", "icon"},
			},
		},
	}

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate routine: %w", err)
	}

	var items []assistant.SuggestedItem
	if err := json.Unmarshal([]byte(resp.Text()), &items); err != nil {
		return nil, fmt.Errorf("gemini: decode routine: %w", err)
	}
	return items, nil
}

func (c *Client) AnalyzePhoto(ctx context.Context, species string, image []byte, mimeType string) (assistant.ScanReport, error) {
	if len(image) == 0 {
		return assistant.ScanReport{}, errors.New("gemini: empty image")
	}

	prompt := fmt.Sprintf(
		"Analyze this %s's photo. Focus on the skin, eyes, and fur for any potential issues. "+
			"Provide a health score from 0 to 100, a status ('Normal', 'Caution', or 'Alert'), "+
			"a brief analysis of your findings, and a short list of simple, actionable recommendations for the owner.",
		species,
	)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":           {Type: genai.TypeInteger, Description: "A health score from 0-100."},
				"status":          {Type: genai.TypeString, Description: "Health status: Normal, Caution, or Alert."},
				"analysis":        {Type: genai.TypeString, Description: "A brief analysis of findings."},
				"recommendations": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "A list of actionable recommendations."},
			},
			Required: []string{"score", "status", "analysis", "recommendations"},
		},
	}

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return assistant.ScanReport{}, fmt.Errorf("gemini: analyze photo: %w", err)
	}

	var report assistant.ScanReport
	if err := json.Unmarshal([]byte(resp.Text()), &report); err != nil {
		return assistant.ScanReport{}, fmt.Errorf("gemini: decode report: %w", err)
	}
	return report, nil
}

func (c *Client) Simplify(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Explain the following text in simple, easy-to-understand terms for a pet owner. "+
			"Keep it concise and avoid technical jargon. Text: %q", text,
	)

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: simplify: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (c *Client) Advise(ctx context.Context, p assistant.PetContext, history []assistant.Turn, message string) (string, error) {
	system := fmt.Sprintf(
		"You are PetPal Lite Assistant, a friendly and helpful AI for dog and cat owners. "+
			"Your answers should be concise, kind, and helpful. Use the provided pet profile to tailor your answers. "+
			"The user's pet is %s, a %s %s (%s) that weighs %s. "+
			"Avoid giving medical prescriptions or diagnoses. For any serious or concerning symptoms, you MUST advise an immediate vet visit. "+
			"When giving advice, try to include a short, actionable checklist. If you're unsure about something, say so and recommend consulting a professional vet. "+
			"This is not a substitute for professional veterinary care.",
		p.Name, p.Age, p.Species, p.Breed, p.Weight,
	)

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		var role genai.Role = genai.RoleUser
		if t.Role == assistant.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(system)},
		},
	}

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: advise: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (c *Client) FindNearbyVets(ctx context.Context, lat, lon float64) ([]assistant.Vet, error) {
	prompt := fmt.Sprintf(
		"Find the top 3 highest-rated veterinarians near latitude %f, longitude %f.", lat, lon,
	)

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: find vets: %w", err)
	}

	// Los resultados salen de los grounding chunks, no del texto.
	out := make([]assistant.Vet, 0)
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			if strings.TrimSpace(chunk.Web.URI) == "" {
				continue
			}
			out = append(out, assistant.Vet{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return out, nil
}
