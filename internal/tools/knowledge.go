package tools

import (
	"fmt"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// documentIndex is the canned corpus behind search_documents. A real
// deployment would query the vector store identified by VECTOR_STORE_ID.
var documentIndex = map[string][]string{
	"refund": {
		"Refunds are processed within 5-7 business days to the original payment method.",
		"Bookings cancelled within 24 hours of purchase are fully refundable.",
	},
	"baggage": {
		"Each passenger may check one bag up to 23kg on standard fares.",
		"Carry-on luggage must not exceed 55x40x20cm.",
	},
	"upgrade": {
		"Pro plan upgrades take effect immediately and are billed monthly.",
	},
}

// SearchDocuments returns passages whose topic key appears in the query.
func SearchDocuments(query string) []string {
	lowered := strings.ToLower(query)
	var hits []string
	for topic, passages := range documentIndex {
		if strings.Contains(lowered, topic) {
			hits = append(hits, passages...)
		}
	}
	return hits
}

// tutorTopics maps a subject to the topics its tutor covers.
var tutorTopics = map[string][]string{
	"math":    {"algebra", "geometry", "calculus", "statistics"},
	"history": {"ancient civilizations", "world wars", "renaissance", "cold war"},
}

// TutorTopics lists the topics available for a subject tutor.
func TutorTopics(subject string) ([]string, bool) {
	topics, ok := tutorTopics[strings.ToLower(strings.TrimSpace(subject))]
	return topics, ok
}

// NewSearchDocumentsTool returns a document-store search tool. The store id
// is surfaced in results so callers can tell which index answered.
func NewSearchDocumentsTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "search_documents",
			Description: "Search the configured document store for relevant passages",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			query, _ := args["query"].(string)
			if query == "" {
				deps.Log.Warn("Tool: search_documents called without a query")
				return nil, fmt.Errorf("search_documents: query is required")
			}

			deps.Log.Debugw("Tool: search_documents called", "query", query, "store", deps.VectorStoreID)

			hits := SearchDocuments(query)
			return map[string]interface{}{
				"vector_store_id": deps.VectorStoreID,
				"query":           query,
				"passages":        hits,
				"count":           len(hits),
			}, nil
		})
}

// NewGetTutorTopicsTool returns a tool listing a subject tutor's topics.
func NewGetTutorTopicsTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_tutor_topics",
			Description: "List the topics a subject tutor can help with",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			subject, _ := args["subject"].(string)
			if subject == "" {
				deps.Log.Warn("Tool: get_tutor_topics called without a subject")
				return nil, fmt.Errorf("get_tutor_topics: subject is required")
			}

			topics, ok := TutorTopics(subject)
			if !ok {
				return map[string]interface{}{
					"subject": subject,
					"topics":  []string{},
					"message": fmt.Sprintf("No tutor available for %s.", subject),
				}, nil
			}

			deps.Log.Debugw("Tool: get_tutor_topics called", "subject", subject, "topics", len(topics))

			return map[string]interface{}{
				"subject": subject,
				"topics":  topics,
			}, nil
		})
}
