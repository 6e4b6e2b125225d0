package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/app/models"
	"blogapi/app/services"
)

// PostController handles the /api/posts endpoints.
type PostController struct {
	posts  *services.PostService
	logger *slog.Logger
}

// NewPostController creates a new PostController.
func NewPostController(posts *services.PostService, logger *slog.Logger) *PostController {
	return &PostController{posts: posts, logger: logger}
}

func (pc *PostController) sendError(w http.ResponseWriter, op string, err error) {
	status, message := errorResponse(err)
	if status == http.StatusInternalServerError {
		pc.logger.Error(op, "error", err)
	}
	writeError(w, status, message)
}

// Index lists all posts, newest publish date first.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.List()
	if err != nil {
		pc.sendError(w, "listing posts", err)
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Show returns a single post and counts the read.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.posts.Get(id)
	if err != nil {
		pc.sendError(w, "fetching post", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Create stores a new post from the request body.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	post, err := pc.posts.Create(input)
	if err != nil {
		pc.sendError(w, "creating post", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": post.ID})
}

// Update rewrites an existing post. The id comes from the path and is
// immutable.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := pc.posts.Update(id, input); err != nil {
		pc.sendError(w, "updating post", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// Delete removes a post.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.posts.Delete(id); err != nil {
		pc.sendError(w, "deleting post", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
