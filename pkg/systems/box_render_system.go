package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pinball/pkg/components"
	"github.com/decker502/pinball/pkg/ecs"
)

// BoxRenderSystem 绘制矩形演示中的所有矩形
type BoxRenderSystem struct {
	em *ecs.EntityManager
}

// NewBoxRenderSystem 创建矩形渲染系统
func NewBoxRenderSystem(em *ecs.EntityManager) *BoxRenderSystem {
	return &BoxRenderSystem{em: em}
}

// Draw 按实体创建顺序绘制，后创建的矩形在上层
func (s *BoxRenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.ColorComponent,
	](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		clr, _ := ecs.GetComponent[*components.ColorComponent](s.em, id)

		vector.DrawFilledRect(screen,
			float32(pos.X), float32(pos.Y),
			float32(col.Width), float32(col.Height),
			clr.Current(), false)
	}
}
