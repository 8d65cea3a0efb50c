package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube/internal/cache"
	"github.com/yatube/yatube/internal/media"
	"github.com/yatube/yatube/internal/service"
)

type Handler struct {
	posts service.PostService
	rels  service.RelationshipService
	auth  service.AuthService
	media *media.Store
	cache *cache.PageCache
}

func New(
	posts service.PostService,
	rels service.RelationshipService,
	auth service.AuthService,
	mediaStore *media.Store,
	pageCache *cache.PageCache,
) *Handler {
	return &Handler{posts: posts, rels: rels, auth: auth, media: mediaStore, cache: pageCache}
}

func pageNumber(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// postID parses the :id segment; non-numeric ids behave like unmatched
// routes and 404.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
