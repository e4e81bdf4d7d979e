package handler

import (
	"github.com/gofiber/fiber/v2"
	"match-chat-api/apperr"
)

// UserIDLocal is the fiber local holding the authenticated user id.
const UserIDLocal = "user_id"

func currentUserID(ctx *fiber.Ctx) string {
	userID, _ := ctx.Locals(UserIDLocal).(string)
	return userID
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	return nil
}
