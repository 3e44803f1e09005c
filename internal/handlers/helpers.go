package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope padrão das respostas da API: {success, message, data}.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func okJSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: data})
}

func okList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Count: &count, Data: data})
}

func okMsg(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Message: message, Data: data})
}

func createdJSON(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, apiResponse{Success: true, Message: message, Data: data})
}

func failJSON(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: false, Message: message})
}

// identidade do token, quando existe (acesso é aberto; ver middleware.Identify)
func currentUser(c *gin.Context) (id int, name string) {
	if v, ok := c.Get("user_id"); ok {
		if n, ok := v.(int); ok {
			id = n
		}
	}
	if v, ok := c.Get("user_name"); ok {
		if s, ok := v.(string); ok {
			name = s
		}
	}
	return
}
