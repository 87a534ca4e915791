// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"
	"strconv"

	"breakthrough/internal/core"
	"breakthrough/internal/game"
	"breakthrough/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame starts a game from the standard layout or a given position
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, _ := c.Locals(validatedBodyKey).(*core.CreateGameRequest)
	if req == nil {
		req = &core.CreateGameRequest{}
	}

	rule := h.stalemate
	if req.Stalemate != "" {
		// oneof validation already passed
		rule, _ = core.ParseStalemateRule(req.Stalemate)
	}

	gameID := h.svc.GenerateGameID()
	snap, err := h.svc.NewGame(gameID, req.Position, rule)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(buildGameResponse(gameID, snap))
}

// GetGame returns the game state. With wait=true it long-polls until the
// move count differs from moveCount.
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if c.Query("wait") != "true" {
		snap, err := h.svc.GetGame(gameID)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(buildGameResponse(gameID, snap))
	}

	moveCount, err := strconv.Atoi(c.Query("moveCount", "-1"))
	if err != nil {
		moveCount = -1
	}

	snap, err := h.svc.WaitForChange(c.Context(), gameID, moveCount)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(buildGameResponse(gameID, snap))
}

// MakeMove applies a move for the side to move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, ok := c.Locals(validatedBodyKey).(*core.MoveRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error: "move is required",
			Code:  core.ErrInvalidRequest,
		})
	}

	from, to, err := core.ParseMove(req.Move)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid move",
			Code:    core.ErrInvalidMove,
			Details: err.Error(),
		})
	}

	snap, err := h.svc.MakeMove(gameID, from, to)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(buildGameResponse(gameID, snap))
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if err := h.svc.DeleteGame(gameID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns an ASCII rendering of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	snap, err := h.svc.GetGame(gameID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(core.BoardResponse{
		Position: snap.Position,
		Board:    snap.Board.ToASCII(),
	})
}

func invalidGameID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
		Error:   "invalid game ID format",
		Code:    core.ErrInvalidRequest,
		Details: "game ID must be a valid UUID",
	})
}

// errorResponse maps service and engine errors onto API error codes
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	resp := core.ErrorResponse{Details: err.Error()}

	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
		resp.Error, resp.Code, resp.Details = "game not found", core.ErrGameNotFound, ""
	case errors.Is(err, game.ErrGameOver):
		resp.Error, resp.Code = "game is over", core.ErrGameOver
	case errors.Is(err, game.ErrIllegalMove):
		resp.Error, resp.Code = "invalid move", core.ErrInvalidMove
	case errors.Is(err, game.ErrInvalidPosition):
		resp.Error, resp.Code = "invalid position", core.ErrInvalidPosition
	default:
		status = fiber.StatusInternalServerError
		resp.Error, resp.Code = "internal server error", core.ErrInternalError
	}

	return c.Status(status).JSON(resp)
}
