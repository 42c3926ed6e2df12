package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"homebuy-agent/domain"
	"homebuy-agent/report"
)

const defaultChatURL = "https://api.openai.com/v1/chat/completions"

type ExplanationService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// NewExplanationService creates an explainer. With an empty apiKey it only
// produces the deterministic fallback text.
func NewExplanationService(apiKey, apiURL, model string) *ExplanationService {
	if apiURL == "" {
		apiURL = defaultChatURL
	}
	return &ExplanationService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Explain summarizes which strategy wins and by how much.
func (s *ExplanationService) Explain(ctx context.Context, evaluation domain.Evaluation) string {
	if !s.enabled {
		return s.fallbackExplanation(evaluation)
	}

	explanation, err := s.callLLM(ctx, s.prompt(evaluation))
	if err != nil {
		log.Printf("Error calling AI service for evaluation explanation: %v", err)
		return s.fallbackExplanation(evaluation)
	}
	return explanation
}

func (s *ExplanationService) prompt(e domain.Evaluation) string {
	var lines strings.Builder
	for _, r := range e.Results {
		if r.Failed() {
			continue
		}
		fmt.Fprintf(&lines, "- %s: net worth %s, %s versus all cash, interest %s, tax savings %s\n",
			report.Title(r.Scenario), report.Money(r.TotalNetWorth), report.SignedMoney(r.NetVsAllCash),
			report.Money(r.TotalInterestCost), report.Money(r.TaxSavings))
	}

	return fmt.Sprintf(`Compare these ways of buying a %s home held for %d years.

ASSUMPTIONS:
- Mortgage rate: %s
- Reference short-term rate: %s (synthetic leverage %s, securities loan %s)
- Expected investment return: %s, blended alternative return: %s

RESULTS:
%s
Explain in 3-4 plain sentences which strategy ends with the most net worth, why, and which risk
the borrower takes on compared with paying cash.`,
		report.Money(e.Input.HomePrice), e.Input.HoldingPeriod,
		report.Percent(e.Input.MortgageRate),
		report.Percent(e.Input.ReferenceRate), report.Percent(e.Derived.SyntheticLeverageRate), report.Percent(e.Derived.SecuritiesLoanRate),
		report.Percent(e.Input.InvestReturn), report.Percent(e.Derived.BlendedAltReturn),
		lines.String())
}

func (s *ExplanationService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a financial planner explaining home purchase financing. You are precise with numbers, neutral about products and always mention leverage risk.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (s *ExplanationService) fallbackExplanation(e domain.Evaluation) string {
	if len(e.Results) == 0 {
		return ""
	}
	best, worst := e.Best(), e.Worst()

	if best.Scenario == domain.ScenarioAllCash {
		return fmt.Sprintf("Over %d years paying cash ends with the most net worth (%s); every financed strategy costs more than it earns. The weakest option is %s at %s.",
			e.Input.HoldingPeriod, report.Money(best.TotalNetWorth),
			strings.ToLower(report.Title(worst.Scenario)), report.SignedMoney(worst.NetVsAllCash))
	}
	return fmt.Sprintf("Over %d years %s ends with the most net worth (%s, %s versus paying cash). The weakest option is %s (%s). Financed strategies depend on the investment return staying above the cost of borrowing.",
		e.Input.HoldingPeriod, strings.ToLower(report.Title(best.Scenario)),
		report.Money(best.TotalNetWorth), report.SignedMoney(best.NetVsAllCash),
		strings.ToLower(report.Title(worst.Scenario)), report.SignedMoney(worst.NetVsAllCash))
}
