package blow

import (
	"fmt"
	"strings"
	"testing"

	"grimdelve/internal/data"
	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// msgRecorder captures every message emitted during resolution.
type msgRecorder struct {
	lines []string
}

func (m *msgRecorder) Msgf(format string, args ...any) {
	m.lines = append(m.lines, fmt.Sprintf(format, args...))
}

func (m *msgRecorder) contains(sub string) bool {
	for _, l := range m.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

var physMethod = &data.BlowMethod{Name: "HIT", ActMsg: "hits you", Phys: true}
var gazeMethod = &data.BlowMethod{Name: "GAZE", ActMsg: "gazes at you"}

func newTestPlayer(t *testing.T) *model.Player {
	t.Helper()
	p := model.NewPlayer("Tester", 10, 100)
	p.Exp = 1000
	return p
}

func newTestMonster(t *testing.T) *model.Monster {
	t.Helper()
	return model.NewMonster("grizzled wight", 12, 60)
}

// newTestContext builds a context with a scripted roller and a message
// recorder attached.
func newTestContext(t *testing.T, p *model.Player, m *model.Monster, damage int, rolls ...int) (*Context, *msgRecorder) {
	t.Helper()
	rec := &msgRecorder{}
	ctx := &Context{
		Player:    p,
		Monster:   m,
		Method:    physMethod,
		Damage:    damage,
		Armor:     p.ArmorClass(),
		RLevel:    m.Level,
		DeathDesc: "a " + m.Name,
		Roller:    &rng.Script{Values: rolls},
		Msg:       rec,
	}
	return ctx, rec
}
