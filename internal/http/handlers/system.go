package handlers

import (
	"net/http"

	"bustms/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type routeResponse struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	BaseFare int64  `json:"base_fare"`
	ACFare   int64  `json:"ac_fare"`
}

// Routes lists the route table with both fares.
func (h Handlers) Routes(c *gin.Context) {
	routes := utils.Routes()
	out := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, routeResponse{
			Number:   r.Number,
			Name:     r.Name,
			BaseFare: r.BaseFare,
			ACFare:   utils.ComputeFare(r.Number, true),
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
