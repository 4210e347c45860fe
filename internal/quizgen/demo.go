package quizgen

import (
	"encoding/json"
	"strings"

	"github.com/griciko/QuizN2/internal/llm"
)

// demoBank backs the mock provider so the app can be tried without a key.
var demoBank = map[Category][]questionOutput{
	CategoryHTTP: {
		{"h1", "Which status code indicates that a resource was created?", []string{"200 OK", "201 Created", "202 Accepted", "204 No Content"}, 1,
			"201 Created is returned when a request has succeeded and a new resource has been created, typically in response to POST."},
		{"h2", "Which HTTP method is defined as idempotent but not safe?", []string{"GET", "POST", "PUT", "HEAD"}, 2,
			"PUT replaces the target resource, so repeating it has the same effect, but it modifies server state and is therefore not safe."},
		{"h3", "What does a 304 response tell the client?", []string{"The resource moved permanently", "The cached copy is still valid", "The request was malformed", "Authentication is required"}, 1,
			"304 Not Modified answers a conditional request: the client's cached representation is current and can be reused."},
	},
	CategoryNetwork: {
		{"n1", "At which OSI layer does IP operate?", []string{"Data link", "Network", "Transport", "Session"}, 1,
			"IP provides logical addressing and routing between networks, which is the responsibility of layer 3, the network layer."},
		{"n2", "Which TCP flag starts the three-way handshake?", []string{"ACK", "FIN", "SYN", "RST"}, 2,
			"The client sends SYN, the server replies SYN-ACK, and the client completes the handshake with ACK."},
		{"n3", "What is the default port for DNS queries?", []string{"25", "53", "67", "443"}, 1,
			"DNS listens on port 53, over UDP for most queries and TCP for zone transfers and large responses."},
	},
	CategoryOS: {
		{"o1", "What do threads of the same process share?", []string{"Stack", "Registers", "Address space", "Program counter"}, 2,
			"Threads share the process address space including heap and globals, while each has its own stack and registers."},
		{"o2", "What triggers a page fault?", []string{"Accessing a page not mapped in physical memory", "A division by zero", "A context switch", "A full disk"}, 0,
			"A page fault occurs when a process touches a virtual page that is not currently resident, so the kernel must load or map it."},
		{"o3", "Which scheduling algorithm can starve long jobs?", []string{"Round robin", "FIFO", "Shortest job first", "Lottery"}, 2,
			"Shortest job first always prefers shorter work, so a steady stream of short jobs can postpone a long job indefinitely."},
	},
	CategorySecurity: {
		{"s1", "What does a salt protect against in password storage?", []string{"Phishing", "Precomputed rainbow table attacks", "Keyloggers", "Session fixation"}, 1,
			"A unique salt per password makes precomputed hash tables useless, since every hash must be attacked individually."},
		{"s2", "Which is an asymmetric encryption algorithm?", []string{"AES", "ChaCha20", "RSA", "3DES"}, 2,
			"RSA uses a public and private key pair. AES, ChaCha20 and 3DES are symmetric ciphers."},
		{"s3", "What does the SameSite cookie attribute mitigate?", []string{"SQL injection", "Cross-site request forgery", "Buffer overflows", "Clickjacking"}, 1,
			"SameSite stops the browser from attaching the cookie to cross-site requests, which blocks most CSRF attacks."},
	},
}

// NewDemoProvider returns a mock provider that answers question and
// feedback requests from a small built-in bank.
func NewDemoProvider() *llm.MockProvider {
	m := llm.NewMockProvider()
	m.Fallback = demoRespond
	return m
}

func demoRespond(req llm.Request) llm.MockResponse {
	if req.Schema == nil {
		return llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}
	}

	var prompt string
	if len(req.Messages) > 0 {
		prompt = req.Messages[0].Content
	}

	var v any
	switch req.Schema.Name {
	case QuestionsSchema.Name:
		v = demoBank[demoCategory(prompt)]
	case FeedbackSchema.Name:
		v = feedbackOutput{
			Summary: "Offline demo analysis. Connect a provider for a real assessment of your answers.",
			Recommendations: []string{
				"Review the explanation of every question you missed.",
				"Re-take the quiz with a live provider for fresh questions.",
				"Pick a different topic to broaden your coverage.",
			},
		}
	default:
		return llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}
	}

	content, err := json.Marshal(v)
	if err != nil {
		return llm.MockResponse{Err: err}
	}
	return llm.MockResponse{Content: content}
}

func demoCategory(prompt string) Category {
	for _, c := range AllCategories {
		if strings.Contains(prompt, c.DisplayName()) {
			return c
		}
	}
	return CategoryHTTP
}
