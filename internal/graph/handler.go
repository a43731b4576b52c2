package graph

import (
	"encoding/json"
	"net/http"

	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/transport"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.uber.org/zap"
)

const maxQueryBytes = 1 << 20

type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler serves POST JSON requests and GET requests for queries. Mutations
// over GET are rejected so a cross-site link cannot change state.
func Handler(schema graphql.Schema) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request

		switch r.Method {
		case http.MethodPost:
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBytes)).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
		case http.MethodGet:
			q := r.URL.Query()
			req.Query = q.Get("query")
			req.OperationName = q.Get("operationName")
			if v := q.Get("variables"); v != "" {
				if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
					http.Error(w, "invalid variables", http.StatusBadRequest)
					return
				}
			}
			if isMutation(req.Query, req.OperationName) {
				http.Error(w, "mutations require POST", http.StatusMethodNotAllowed)
				return
			}
		default:
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if req.Query == "" {
			http.Error(w, "missing query", http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        transport.WithResponseWriter(r.Context(), w),
		})

		if result.HasErrors() {
			logger.FromCtx(r.Context()).Debug("graphql request returned errors",
				zap.String("operation", req.OperationName),
				zap.Int("errors", len(result.Errors)),
			)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	})
}

// isMutation reports whether the selected operation is a mutation. A query
// that does not parse is left to graphql.Do to report.
func isMutation(query, operationName string) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}
		return op.Operation == ast.OperationTypeMutation
	}
	return false
}
