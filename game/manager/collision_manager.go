package manager

import (
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies the head of body against the walls and the rest of the body.
// body[0] is the head.
func (cm *CollisionManager) Check(body []types.Point) types.CollisionType {
	if len(body) == 0 {
		return types.NoCollision
	}

	head := body[0]
	if cm.IsWall(head) {
		return types.WallCollision
	}

	if cm.isSelfCollision(head, body[1:]) {
		return types.SelfCollision
	}

	return types.NoCollision
}

// IsWall checks if a position lies outside the arena
func (cm *CollisionManager) IsWall(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(head types.Point, tail []types.Point) bool {
	for _, segment := range tail {
		if head == segment {
			return true
		}
	}
	return false
}

// Occupied reports whether pos is covered by any segment of body.
func Occupied(pos types.Point, body []types.Point) bool {
	for _, segment := range body {
		if pos == segment {
			return true
		}
	}
	return false
}
