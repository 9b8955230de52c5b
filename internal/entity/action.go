package entity

import (
	"fmt"

	"github.com/boostbuddies/backend/pkg/enum"
)

type ActionKind string

var (
	ActionLike         = enum.New(ActionKind("like"))
	ActionComment      = enum.New(ActionKind("comment"))
	ActionShare        = enum.New(ActionKind("share"))
	ActionPostApproved = enum.New(ActionKind("post_approved"))
	ActionDailyBonus   = enum.New(ActionKind("daily_bonus"))
)

// EngagementKinds are the kinds a user can perform on somebody else's post.
// The other kinds are granted by the system, never submitted by a caller.
var EngagementKinds = []ActionKind{ActionLike, ActionComment, ActionShare}

type ActionValue struct {
	Points      int64
	Description string
}

// ValueOf is the action catalog. Point values are fixed at deploy time; no
// other place in the codebase may hard-code them.
func ValueOf(kind ActionKind) (ActionValue, error) {
	switch kind {
	case ActionLike:
		return ActionValue{Points: 1, Description: "Liked a post"}, nil
	case ActionComment:
		return ActionValue{Points: 2, Description: "Commented on a post"}, nil
	case ActionShare:
		return ActionValue{Points: 3, Description: "Shared a post"}, nil
	case ActionPostApproved:
		return ActionValue{Points: 10, Description: "Post reached its approval threshold"}, nil
	case ActionDailyBonus:
		return ActionValue{Points: 5, Description: "Daily login bonus"}, nil
	}

	return ActionValue{}, fmt.Errorf("unknown action kind %s", kind)
}
