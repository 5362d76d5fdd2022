package bonus

//go:generate mockgen -destination=mock/mock_service.go -package=mockbonus -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/pf-bonus-bot/internal/dice"
	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/KirkDiggler/pf-bonus-bot/internal/repositories/actoreffects"
	"golang.org/x/sync/errgroup"
)

// Breakdown is the result of resolving one target for one actor
type Breakdown struct {
	ActorID   string
	Target    effects.Target
	SubTarget string
	Applied   []*modifiers.Modifier
	Discarded []*modifiers.Modifier
	Total     float64
}

// Service computes stacked bonus totals from stored effects
type Service interface {
	// Calculate resolves every enabled change for target on one actor
	Calculate(ctx context.Context, actorID string, target effects.Target, subTarget string) (*Breakdown, error)

	// CalculateAll runs Calculate for several actors concurrently. Results
	// follow the order of actorIDs.
	CalculateAll(ctx context.Context, actorIDs []string, target effects.Target, subTarget string) ([]*Breakdown, error)

	// AddEffect stores a new effect for an actor
	AddEffect(ctx context.Context, actorID string, effect *effects.Effect) error

	// SetEnabled switches an effect on or off
	SetEnabled(ctx context.Context, actorID, effectID string, enabled bool) error

	// RemoveEffect deletes an effect from an actor
	RemoveEffect(ctx context.Context, actorID, effectID string) error

	// ListEffects returns an actor's effects in creation order
	ListEffects(ctx context.Context, actorID string) ([]*effects.Effect, error)
}

// ServiceConfig holds dependencies for the bonus service
type ServiceConfig struct {
	Repository actoreffects.Repository
	Roller     dice.Roller
	Rules      modifiers.StackingRules
}

type service struct {
	repository actoreffects.Repository
	roller     dice.Roller
	rules      modifiers.StackingRules
}

// NewService creates a new bonus service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		rules:      cfg.Rules,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.rules == nil {
		svc.rules = modifiers.DefaultStackingRules()
	}
	return svc
}

func (s *service) loadManager(ctx context.Context, actorID string) (*effects.Manager, error) {
	stored, err := s.repository.ListByActor(ctx, actorID)
	if err != nil {
		return nil, bonuserr.Wrapf(err, "failed to load effects for actor %s", actorID).
			WithMeta(bonuserr.MetaActorID, actorID)
	}
	return effects.NewManager(actorID, stored...), nil
}

func (s *service) Calculate(ctx context.Context, actorID string, target effects.Target, subTarget string) (*Breakdown, error) {
	if actorID == "" {
		return nil, bonuserr.InvalidArgument("actor ID is required")
	}
	if !target.Valid() {
		return nil, bonuserr.InvalidArgumentf("unknown target %q", target)
	}

	manager, err := s.loadManager(ctx, actorID)
	if err != nil {
		return nil, err
	}

	changes := manager.ChangesFor(target, subTarget)
	mods := make([]*modifiers.Modifier, 0, len(changes))
	for _, change := range changes {
		value, err := dice.Evaluate(change.Formula, s.roller)
		if err != nil {
			return nil, bonuserr.Wrapf(err, "effect %q has a bad formula", change.Source.Name).
				WithMeta(bonuserr.MetaActorID, actorID).
				WithMeta(bonuserr.MetaEffectID, change.Source.EffectID)
		}

		mod, err := modifiers.NewModifier(change.Formula, change.Type, value, change.Source)
		if err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}

	applied := modifiers.Resolve(mods, s.rules)
	breakdown := &Breakdown{
		ActorID:   actorID,
		Target:    target,
		SubTarget: subTarget,
		Applied:   applied,
		Discarded: modifiers.Discarded(mods, applied),
		Total:     modifiers.Sum(applied),
	}

	log.Printf("Resolved %s for actor %s: %d applied, %d discarded, total %g",
		target, actorID, len(breakdown.Applied), len(breakdown.Discarded), breakdown.Total)
	return breakdown, nil
}

func (s *service) CalculateAll(ctx context.Context, actorIDs []string, target effects.Target, subTarget string) ([]*Breakdown, error) {
	results := make([]*Breakdown, len(actorIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, actorID := range actorIDs {
		g.Go(func() error {
			breakdown, err := s.Calculate(gctx, actorID, target, subTarget)
			if err != nil {
				return err
			}
			results[i] = breakdown
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) AddEffect(ctx context.Context, actorID string, effect *effects.Effect) error {
	if effect == nil {
		return bonuserr.InvalidArgument("effect cannot be nil")
	}
	for i, change := range effect.Changes {
		if err := dice.Validate(change.Formula); err != nil {
			return bonuserr.WrapWithCode(err, bonuserr.CodeInvalidArgument,
				fmt.Sprintf("change %d of %q has a bad formula", i+1, effect.Name)).
				WithMeta(bonuserr.MetaActorID, actorID)
		}
	}
	if err := s.repository.Save(ctx, actorID, effect); err != nil {
		return bonuserr.Wrapf(err, "failed to add effect %q", effect.Name)
	}
	log.Printf("Added effect %s (%s) to actor %s", effect.ID, effect.Name, actorID)
	return nil
}

func (s *service) SetEnabled(ctx context.Context, actorID, effectID string, enabled bool) error {
	manager, err := s.loadManager(ctx, actorID)
	if err != nil {
		return err
	}
	if effect := manager.GetEffect(effectID); effect != nil && effect.Enabled == enabled {
		return nil
	}

	if err := manager.SetEnabled(effectID, enabled); err != nil {
		return err
	}
	effect := manager.GetEffect(effectID)
	if err := s.repository.Save(ctx, actorID, effect); err != nil {
		return bonuserr.Wrapf(err, "failed to update effect %q", effect.Name)
	}
	log.Printf("Set effect %s (%s) enabled=%t for actor %s", effect.ID, effect.Name, enabled, actorID)
	return nil
}

func (s *service) RemoveEffect(ctx context.Context, actorID, effectID string) error {
	if err := s.repository.Delete(ctx, actorID, effectID); err != nil {
		return err
	}
	log.Printf("Removed effect %s from actor %s", effectID, actorID)
	return nil
}

func (s *service) ListEffects(ctx context.Context, actorID string) ([]*effects.Effect, error) {
	manager, err := s.loadManager(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return manager.ListEffects(), nil
}
