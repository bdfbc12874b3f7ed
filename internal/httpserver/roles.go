package httpserver

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/nglume/nglume/pkg/gate"
	"github.com/nglume/nglume/pkg/response"
)

type roleResp struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Grants      []string `json:"grants"`
}

// listRoles exposes the access control table for admin tooling.
func (srv *HTTPServer) listRoles(c *gin.Context) {
	table := srv.gate.Describe()

	roles := make([]roleResp, 0, len(table))
	for key, node := range table {
		if node.Type != gate.TypeRole {
			continue
		}
		roles = append(roles, roleResp{
			Key:         key,
			Description: node.Description,
			Grants:      node.Children,
		})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Key < roles[j].Key })

	response.OK(c, gin.H{
		"roles":         roles,
		"default_roles": srv.gate.DefaultRoles(),
	})
}
