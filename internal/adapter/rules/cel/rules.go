// Package celrules evaluates achievement and tag unlocks from a YAML rule
// set whose conditions are CEL expressions over a summary of the document.
package celrules

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidRules = errors.New("invalid rules")

type Rule struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	When        string `yaml:"when"`
	RewardCoins int    `yaml:"reward_coins"`
	RewardGems  int    `yaml:"reward_gems"`
}

type ruleFile struct {
	Achievements []Rule `yaml:"achievements"`
	Tags         []Rule `yaml:"tags"`
}

type compiled struct {
	record player.StatusRecord
	prg    cel.Program
}

// Evaluator holds compiled rules. It is safe for concurrent use.
type Evaluator struct {
	rules  []compiled
	logger *log.Logger
}

var _ ports.StatusEvaluator = (*Evaluator)(nil)

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("zone", cel.IntType),
		cel.Variable("level", cel.IntType),
		cel.Variable("research_level", cel.IntType),
		cel.Variable("best_streak", cel.IntType),
		cel.Variable("prestige_level", cel.IntType),
		cel.Variable("coins", cel.IntType),
		cel.Variable("gems", cel.IntType),
		cel.Variable("shiny_gems", cel.IntType),
		cel.Variable("relics", cel.IntType),
		cel.Variable("premium", cel.BoolType),
		cel.Variable("garden_growth", cel.DoubleType),
		cel.Variable("accuracy", cel.DoubleType),
		cel.Variable("stats", cel.MapType(cel.StringType, cel.IntType)),
	)
}

// Default compiles the embedded rule set.
func Default(logger *log.Logger) *Evaluator {
	ev, err := Parse(defaultYAML, logger)
	if err != nil {
		panic(fmt.Sprintf("embedded rules: %v", err))
	}
	return ev
}

// Load compiles the rule file at path. An empty path yields the embedded set.
func Load(path string, logger *log.Logger) (*Evaluator, error) {
	if path == "" {
		return Default(logger), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Parse(b, logger)
}

// Parse compiles every rule up front so a bad expression fails at startup.
func Parse(b []byte, logger *log.Logger) (*Evaluator, error) {
	if logger == nil {
		logger = log.Default()
	}
	var f ruleFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ev := &Evaluator{logger: logger}
	seen := map[string]bool{}
	add := func(kind player.StatusKind, rules []Rule) error {
		for _, r := range rules {
			key := string(kind) + ":" + r.ID
			if r.ID == "" || r.When == "" {
				return fmt.Errorf("%w: %s rule %q needs an id and a condition", ErrInvalidRules, kind, r.ID)
			}
			if seen[key] {
				return fmt.Errorf("%w: duplicate %s %q", ErrInvalidRules, kind, r.ID)
			}
			seen[key] = true

			ast, iss := env.Compile(r.When)
			if iss != nil && iss.Err() != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidRules, r.ID, iss.Err())
			}
			if !ast.OutputType().IsExactType(cel.BoolType) {
				return fmt.Errorf("%w: %s: condition must be boolean, got %s", ErrInvalidRules, r.ID, ast.OutputType())
			}
			prg, err := env.Program(ast)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidRules, r.ID, err)
			}
			ev.rules = append(ev.rules, compiled{
				record: player.StatusRecord{
					ID:          r.ID,
					Kind:        kind,
					Name:        r.Name,
					Description: r.Description,
					RewardCoins: r.RewardCoins,
					RewardGems:  r.RewardGems,
				},
				prg: prg,
			})
		}
		return nil
	}
	if err := add(player.StatusAchievement, f.Achievements); err != nil {
		return nil, err
	}
	if err := add(player.StatusTag, f.Tags); err != nil {
		return nil, err
	}
	return ev, nil
}

// Evaluate returns every rule whose condition holds. A rule that fails to
// evaluate is logged and skipped.
func (e *Evaluator) Evaluate(s player.State) []player.StatusRecord {
	in := Facts(s)
	var out []player.StatusRecord
	for _, r := range e.rules {
		if s.HasStatus(r.record.Kind, r.record.ID) {
			continue
		}
		val, _, err := r.prg.Eval(in)
		if err != nil {
			e.logger.Printf("rules: %s: %v", r.record.ID, err)
			continue
		}
		if ok, _ := val.Value().(bool); ok {
			out = append(out, r.record)
		}
	}
	return out
}

// Len reports the number of compiled rules.
func (e *Evaluator) Len() int {
	return len(e.rules)
}

// Facts is the activation rule conditions see.
func Facts(s player.State) map[string]any {
	st := s.Statistics
	accuracy := 0.0
	if st.TotalQuestionsAnswered > 0 {
		accuracy = float64(st.CorrectAnswers) / float64(st.TotalQuestionsAnswered)
	}
	return map[string]any{
		"zone":           int64(s.Zone),
		"level":          int64(s.Progression.Level),
		"research_level": int64(s.Research.Level),
		"best_streak":    int64(max(s.KnowledgeStreak.Best, st.LongestStreak)),
		"prestige_level": int64(s.Progression.PrestigeLevel),
		"coins":          int64(s.Currencies.Coins),
		"gems":           int64(s.Currencies.Gems),
		"shiny_gems":     int64(s.Currencies.ShinyGems),
		"relics":         int64(len(s.Inventory.Relics)),
		"premium":        s.Premium,
		"garden_growth":  s.Garden.GrowthCm,
		"accuracy":       accuracy,
		"stats": map[string]int64{
			"total_questions_answered": int64(st.TotalQuestionsAnswered),
			"correct_answers":          int64(st.CorrectAnswers),
			"zones_reached":            int64(st.ZonesReached),
			"items_collected":          int64(st.ItemsCollected),
			"coins_earned":             int64(st.CoinsEarned),
			"gems_earned":              int64(st.GemsEarned),
			"shiny_gems_earned":        int64(st.ShinyGemsEarned),
			"chests_opened":            int64(st.ChestsOpened),
			"total_deaths":             int64(st.TotalDeaths),
			"total_victories":          int64(st.TotalVictories),
			"longest_streak":           int64(st.LongestStreak),
			"total_damage_dealt":       int64(st.TotalDamageDealt),
			"total_damage_taken":       int64(st.TotalDamageTaken),
			"items_upgraded":           int64(st.ItemsUpgraded),
			"items_sold":               int64(st.ItemsSold),
			"total_research_spent":     int64(st.TotalResearchSpent),
			"revivals":                 int64(st.Revivals),
			"skills_rolled":            int64(st.SkillsRolled),
			"gems_mined":               int64(st.GemsMined),
			"shiny_gems_mined":         int64(st.ShinyGemsMined),
		},
	}
}
