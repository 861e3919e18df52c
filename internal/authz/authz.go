// Package authz 集中判斷呼叫者能否對 workout 執行某個動作。
package authz

import (
	"context"
	"errors"
	"fmt"

	"fitlife/internal/repository"
	"fitlife/internal/session"
)

type Action int

const (
	List Action = iota
	Read
	Create
	Update
	Delete
)

func (a Action) String() string {
	switch a {
	case List:
		return "list"
	case Read:
		return "read"
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type Reason int

const (
	None Reason = iota
	Unauthorized
	BadRequest
	Forbidden
	NotFound
)

func (r Reason) String() string {
	switch r {
	case None:
		return "none"
	case Unauthorized:
		return "unauthorized"
	case BadRequest:
		return "bad request"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Decision 為 Allow 或帶原因的 Deny
type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision { return Decision{Allowed: true} }

func Deny(r Reason) Decision { return Decision{Reason: r} }

// OwnerLookup 回傳 workout 的擁有者，不存在時回傳 repository.ErrNotFound
type OwnerLookup func(ctx context.Context, workoutID string) (string, error)

type Authorizer struct {
	owner OwnerLookup
}

func New(owner OwnerLookup) *Authorizer {
	return &Authorizer{owner: owner}
}

// Authorize 依動作、身分與 workout 擁有者決定是否放行。
// 查詢擁有者失敗（非 not found）時回傳 error。
func (a *Authorizer) Authorize(ctx context.Context, id session.Identity, action Action, workoutID string) (Decision, error) {
	if id.Anonymous() {
		return Deny(Unauthorized), nil
	}

	switch action {
	case List, Create:
		return Allow(), nil
	case Read:
		if !repository.ValidID(workoutID) {
			return Deny(BadRequest), nil
		}
		return Allow(), nil
	case Update, Delete:
		if !repository.ValidID(workoutID) {
			return Deny(BadRequest), nil
		}
		if id.IsAdmin() {
			return Allow(), nil
		}
		owner, err := a.owner(ctx, workoutID)
		if errors.Is(err, repository.ErrNotFound) {
			return Deny(NotFound), nil
		}
		if err != nil {
			return Decision{}, fmt.Errorf("Authorize: %w", err)
		}
		if owner != id.UserID {
			return Deny(Forbidden), nil
		}
		return Allow(), nil
	}
	return Decision{}, fmt.Errorf("Authorize: unknown %s", action)
}

// Scope 管理員不受限，其他人只能看到自己的資料
func Scope(id session.Identity) repository.Scope {
	if id.IsAdmin() {
		return repository.Scope{}
	}
	return repository.Scope{OwnerID: id.UserID}
}
