package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the toast-shaped failure envelope the UI renders.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// ErrorWithAction adds a follow-up button (label + target route) to the
// failure, used by the login and sign-up dialogs.
func ErrorWithAction(c *gin.Context, statusCode int, code, message, action, actionURL string) {
	errBody := gin.H{
		"code":    code,
		"message": message,
		"action":  action,
	}
	if actionURL != "" {
		errBody["action_url"] = actionURL
	}
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errBody,
	})
}
