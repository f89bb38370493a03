package queries

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetPendingFeedbackQueryIsNotConstructed = errors.New(
	"GetPendingFeedbackQuery must be created via NewGetPendingFeedbackQuery constructor",
)

// GetPendingFeedbackQuery lists a user's completed orders that still await
// feedback, newest first.
type GetPendingFeedbackQuery struct {
	userID user.ID
	guard  guard.ConstructorGuard
}

func NewGetPendingFeedbackQuery(userID user.ID) (GetPendingFeedbackQuery, error) {
	if strings.TrimSpace(string(userID)) == "" {
		return GetPendingFeedbackQuery{}, errs.NewValueIsRequiredError("user id")
	}
	return GetPendingFeedbackQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingFeedbackQueryIsNotConstructed)
}

func (q GetPendingFeedbackQuery) UserID() user.ID {
	return q.userID
}
