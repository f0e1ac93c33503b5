package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

type handler struct {
	games   *Manager
	log     *log.Logger
	verbose bool
}

// statusFor maps engine and session errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, chesserrors.ErrMalformedNotation):
		return fiber.StatusBadRequest
	case errors.Is(err, chesserrors.ErrInvalidState):
		return fiber.StatusConflict
	case errors.Is(err, chesserrors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errTooManyGames):
		return fiber.StatusTooManyRequests
	}
	return fiber.StatusInternalServerError
}

func errorBody(err error) ErrorBody {
	return ErrorBody{
		Error:             err.Error(),
		PromotionRequired: errors.Is(err, chesserrors.ErrPromotionRequired),
	}
}

func (h *handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		h.log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(errorBody(err))
}

func (h *handler) session(c *fiber.Ctx) (*Session, error) {
	return h.games.Get(c.Params("id"))
}

type createRequest struct {
	FEN string `json:"fen"`
}

func (h *handler) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: "malformed request body"})
		}
	}
	session, err := h.games.Create(req.FEN)
	if err != nil {
		return h.fail(c, err)
	}
	if h.verbose {
		h.log.Printf("created game %s", session.ID)
	}
	return c.Status(fiber.StatusCreated).JSON(session.State())
}

func (h *handler) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": h.games.IDs()})
}

func (h *handler) getGame(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(session.State())
}

func (h *handler) legalMoves(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	from := chess.NoSquare
	if text := c.Query("from"); text != "" {
		sq, ok := chess.ParseSquare(text)
		if !ok {
			return h.fail(c, &chesserrors.NotationError{
				Err:      chesserrors.ErrMalformedNotation,
				Input:    text,
				Field:    "from",
				Expected: "a square such as e2",
			})
		}
		from = sq
	}
	return c.JSON(fiber.Map{"moves": session.LegalMoves(from)})
}

// playMove plays a move request in whichever notation it carries.
func playMove(session *Session, req moveRequest) (GameState, error) {
	switch {
	case req.UCI != "":
		return session.PlayUCI(req.UCI)
	case req.SAN != "":
		return session.PlaySAN(req.SAN)
	}
	return GameState{}, chesserrors.Wrap(chesserrors.ErrMalformedNotation, "move needs uci or san")
}

func (h *handler) playMove(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: "malformed request body"})
	}
	state, err := playMove(session, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *handler) undo(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	state, err := session.Undo()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *handler) reset(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(session.Reset())
}

func (h *handler) deleteGame(c *fiber.Ctx) error {
	if err := h.games.Delete(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
