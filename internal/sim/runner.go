// Package sim drives blow resolution turn by turn: it rolls each blow's
// damage dice, dispatches to the effect handler and consumes the
// outcome flags. Hit determination and attack selection stay out of
// scope; every scripted blow lands.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"grimdelve/internal/data"
	"grimdelve/internal/db"
	"grimdelve/internal/game/blow"
	"grimdelve/internal/model"
	"grimdelve/internal/rng"
)

// Journal receives resolved blow records. Satisfied by *db.Journal.
type Journal interface {
	RecordBlow(ctx context.Context, rec db.BlowRecord) error
}

// Blow is one entry of the attacker's blow routine.
type Blow struct {
	Method    string
	Effect    string
	DiceNum   int
	DiceSides int
}

// Encounter is a scripted fight between one monster and the player.
type Encounter struct {
	Player  *model.Player
	Monster *model.Monster
	Blows   []Blow
	Turns   int
}

// Result summarizes a finished encounter.
type Result struct {
	EncounterID uuid.UUID
	TurnsRun    int
	BlowsDealt  int
	Fled        bool
	PlayerDead  bool
}

// Runner executes encounters. Journal may be nil.
type Runner struct {
	Roller  rng.Roller
	Msg     blow.Messenger
	World   blow.World
	Journal Journal
}

// Run resolves the encounter to completion: defender death, attacker
// disengagement or the turn limit, whichever comes first.
func (r *Runner) Run(ctx context.Context, enc *Encounter) (*Result, error) {
	res := &Result{EncounterID: uuid.New()}

	for turn := 1; turn <= enc.Turns; turn++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.TurnsRun = turn

		stop, err := r.runTurn(ctx, enc, res, turn)
		if err != nil {
			return res, err
		}
		if stop {
			break
		}
	}

	res.PlayerDead = enc.Player.Dead
	return res, nil
}

func (r *Runner) runTurn(ctx context.Context, enc *Encounter, res *Result, turn int) (stop bool, err error) {
	for i, b := range enc.Blows {
		if enc.Player.Dead {
			return true, nil
		}

		method := data.GetBlowMethod(b.Method)
		if action := blow.ActionMessage(method, r.Roller); action != "" && r.Msg != nil {
			r.Msg.Msgf("The %s %s", enc.Monster.Name, action)
		}

		bctx := &blow.Context{
			Player:    enc.Player,
			Monster:   enc.Monster,
			Method:    method,
			Damage:    r.Roller.Damroll(b.DiceNum, b.DiceSides),
			Armor:     enc.Player.ArmorClass(),
			RLevel:    effectiveLevel(enc.Monster),
			DeathDesc: fmt.Sprintf("a %s", enc.Monster.Name),
			Roller:    r.Roller,
			Msg:       r.Msg,
			World:     r.World,
		}

		if handler, ok := blow.HandlerFor(b.Effect); ok {
			handler(bctx)
		} else {
			// No bespoke effect: bare damage only.
			enc.Player.TakeHit(bctx.Damage, bctx.DeathDesc)
		}
		res.BlowsDealt++

		if err := r.journalBlow(ctx, res.EncounterID, turn, i, b, bctx); err != nil {
			return true, err
		}

		if bctx.Blinked {
			// Disengage happens only after the full routine finishes.
			res.Fled = true
		}
		if bctx.Break {
			// Remaining blows this turn are cancelled.
			slog.Debug("blow chain interrupted", "monster", enc.Monster.Name, "turn", turn)
			break
		}
	}

	if enc.Player.Dead {
		return true, nil
	}
	if res.Fled {
		if r.Msg != nil {
			r.Msg.Msgf("There is a puff of smoke!")
		}
		slog.Debug("attacker disengaged", "monster", enc.Monster.Name, "turn", turn)
		return true, nil
	}
	return false, nil
}

func (r *Runner) journalBlow(ctx context.Context, id uuid.UUID, turn, index int, b Blow, bctx *blow.Context) error {
	if r.Journal == nil {
		return nil
	}
	rec := db.BlowRecord{
		EncounterID:  id,
		Turn:         turn,
		BlowIndex:    index,
		Method:       b.Method,
		Effect:       b.Effect,
		Damage:       bctx.Damage,
		Obvious:      bctx.Obvious,
		Blinked:      bctx.Blinked,
		Broke:        bctx.Break,
		DefenderHP:   bctx.Player.HP,
		DefenderDead: bctx.Player.Dead,
	}
	if err := r.Journal.RecordBlow(ctx, rec); err != nil {
		return fmt.Errorf("journaling blow %d/%d: %w", turn, index, err)
	}
	return nil
}

// effectiveLevel is the attacker level used for magnitude scaling,
// floored at 1 so dice ranges stay valid.
func effectiveLevel(m *model.Monster) int {
	if m.Level < 1 {
		return 1
	}
	return m.Level
}
