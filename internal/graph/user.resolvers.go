package graph

import (
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/transport"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) userQueries() graphql.Fields {
	return graphql.Fields{
		"me": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				u, err := r.UserSvc.CurrentUser(p.Context)
				if err != nil {
					return nil, present(p.Context, err)
				}
				if u == nil {
					return nil, nil
				}
				return toGraphQLUser(u), nil
			},
		},
	}
}

// logout revokes the session and, when served over HTTP, clears the cookie.
func (r *Resolver) userMutations() graphql.Fields {
	return graphql.Fields{
		"logout": &graphql.Field{
			Type: graphql.NewNonNull(logoutResultType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.UserSvc.Logout(p.Context); err != nil {
					return nil, present(p.Context, err)
				}
				transport.SetCookie(p.Context, auth.ClearedSessionCookie(r.SecureCookie))
				return map[string]interface{}{"success": true}, nil
			},
		},
	}
}
