package admin

import (
	"strconv"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// SavePostRequest create or update a post
type SavePostRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished *bool  `json:"is_published"`
}

func (r SavePostRequest) toInput() service.SavePostInput {
	return service.SavePostInput{
		Slug:        r.Slug,
		Type:        r.Type,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
		IsPublished: r.IsPublished,
	}
}

// ListPosts returns posts for the back office, drafts included
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.ListAdmin(c.Query("type"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, posts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetPost returns one post by id
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.PostService.GetAdminByID(id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, post)
}

// CreatePost creates a post
func (h *Handler) CreatePost(c *gin.Context) {
	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	post, err := h.PostService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, post)
}

// UpdatePost updates a post
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	post, err := h.PostService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, post)
}

// DeletePost removes a post
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	response.Success(c, nil)
}
