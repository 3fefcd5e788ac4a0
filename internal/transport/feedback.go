package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chaicart-be/internal/feedback"
)

func (h *Handler) FeedbackView(c *gin.Context) {
	c.HTML(http.StatusOK, "feedback.html", nil)
}

// SubmitFeedback accepts the feedback form and redirects home. Nothing is
// stored.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	h.FeedbackSvc.Submit(c.Request.Context(), feedback.Entry{
		Name:       c.PostForm("name"),
		Phone:      c.PostForm("phone"),
		Experience: c.PostForm("experience"),
		Rating:     c.PostForm("rating"),
		Comment:    c.PostForm("comment"),
	})

	c.Redirect(http.StatusSeeOther, "/")
}
