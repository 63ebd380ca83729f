package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lewis3ai/INFOA1test/global"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/services"
)

// CollectionHandler serves the /mypokemon endpoints. All of them sit
// behind the auth middleware, which guarantees a resolved user in the
// context.
type CollectionHandler struct {
	svc services.CollectionService
}

func NewCollectionHandler(svc services.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// currentUser pulls the user the auth middleware stored.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(global.CtxUserKey).(*models.User)
}

// Save handles POST /mypokemon.
func (h *CollectionHandler) Save(c *gin.Context) {
	var req models.SavePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	_, species, err := h.svc.Save(user.ID, req.PokemonID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrPokemonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("%s saved!", species.Name)})
}

// List handles GET /mypokemon.
func (h *CollectionHandler) List(c *gin.Context) {
	user := currentUser(c)
	list, err := h.svc.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if list == nil {
		list = []models.UserPokemon{} // empty collection is [] not null
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /mypokemon/:id.
func (h *CollectionHandler) Get(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		// An unparsable id can't match any row; same response as not owned.
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrNotOwned.Error()})
		return
	}

	user := currentUser(c)
	up, err := h.svc.Get(user.ID, id)
	if err != nil {
		h.collectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, up)
}

// Rename handles PUT /mypokemon.
func (h *CollectionHandler) Rename(c *gin.Context) {
	var req models.RenamePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	if err := h.svc.Rename(user.ID, req.ID, req.Name); err != nil {
		h.collectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Pokemon updated to '%s'!", req.Name)})
}

// Release handles DELETE /mypokemon.
func (h *CollectionHandler) Release(c *gin.Context) {
	var req models.ReleasePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	if err := h.svc.Release(user.ID, req.ID); err != nil {
		h.collectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pokemon released!"})
}

// collectionError maps service errors for the owned-pokemon routes.
// Missing and not-owned rows share one 401 so existence never leaks.
func (h *CollectionHandler) collectionError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotOwned) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseUint safely converts a numeric string to uint.
func parseUint(s string) (uint, error) {
	id64, err := strconv.ParseUint(s, 10, 0)
	return uint(id64), err
}
