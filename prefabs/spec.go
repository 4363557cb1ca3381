package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingField is returned when a stat entry omits a required key.
var ErrMissingField = errors.New("prefabs: missing required field")

// Region kinds accepted in regions.yaml.
const (
	RegionKindWall   = "wall"
	RegionKindFloor  = "floor"
	RegionKindLiquid = "liquid"
	RegionKindObject = "object"
)

// EnemyStat is one entry of enemies.yaml.
type EnemyStat struct {
	Size                float64   `yaml:"size"`
	Speed               float64   `yaml:"speed"`
	MaxHealth           float64   `yaml:"max_health"`
	HitDamage           float64   `yaml:"hit_damage"`
	AlertRadius         float64   `yaml:"alert_radius"`
	ChaseSpeed          float64   `yaml:"chase_speed"`
	AlertCooldown       float64   `yaml:"alert_cooldown"`
	KnockbackResistance float64   `yaml:"knockback_resistance"`
	FlashDuration       float64   `yaml:"flash_duration"`
	Color               YAMLColor `yaml:"color"`
}

var enemyRequired = []string{"size", "speed", "max_health", "hit_damage", "alert_radius", "chase_speed", "alert_cooldown", "color"}

// RegionStat is one entry of regions.yaml.
type RegionStat struct {
	Kind         string    `yaml:"kind"`
	Solid        bool      `yaml:"solid"`
	Color        YAMLColor `yaml:"color"`
	SpeedFactor  float64   `yaml:"speed_factor"`
	DamagePerSec float64   `yaml:"damage_per_sec"`
	Interactable bool      `yaml:"interactable"`
}

var regionRequired = []string{"kind", "solid", "color"}

// PlayerStat is player.yaml.
type PlayerStat struct {
	Radius           float64   `yaml:"radius"`
	Speed            float64   `yaml:"speed"`
	MaxHealth        float64   `yaml:"max_health"`
	InvulnTime       float64   `yaml:"invuln_time"`
	InvulnSpeed      float64   `yaml:"invuln_speed"`
	KnockbackForce   float64   `yaml:"knockback_force"`
	MaxStamina       float64   `yaml:"max_stamina"`
	StaminaRegen     float64   `yaml:"stamina_regen"`
	DodgeStaminaCost float64   `yaml:"dodge_stamina_cost"`
	DodgeDistance    float64   `yaml:"dodge_distance"`
	DodgeSpeed       float64   `yaml:"dodge_speed"`
	SneakSpeedFactor float64   `yaml:"sneak_speed_factor"`
	AimDeadZone      float64   `yaml:"aim_dead_zone"`
	Color            YAMLColor `yaml:"color"`
}

var playerRequired = []string{
	"radius", "speed", "max_health", "invuln_time", "invuln_speed", "knockback_force",
	"max_stamina", "stamina_regen", "dodge_stamina_cost", "dodge_distance", "dodge_speed",
	"sneak_speed_factor", "color",
}

// SwordStat is one entry of sword.yaml.
type SwordStat struct {
	Range       float64 `yaml:"range"`
	ArcDegrees  float64 `yaml:"arc_degrees"`
	SwingTime   float64 `yaml:"swing_time"`
	Damage      float64 `yaml:"damage"`
	Knockback   float64 `yaml:"knockback"`
	SneakBonus  float64 `yaml:"sneak_bonus"`
	StaminaCost float64 `yaml:"stamina_cost"`
}

var swordRequired = []string{"range", "arc_degrees", "swing_time", "damage"}

// PatternDefaults is one entry of patterns.yaml. Script is empty for built-in
// patterns.
type PatternDefaults struct {
	Script string             `yaml:"script"`
	Params map[string]float64 `yaml:"params"`
}

var patternRequired = []string{"params"}

// Catalog holds every stat table the simulation reads at build time.
type Catalog struct {
	Enemies  map[string]EnemyStat
	Regions  map[string]RegionStat
	Patterns map[string]PatternDefaults
	Swords   map[string]SwordStat
	Player   PlayerStat
}

// LoadCatalog reads every stat file through Load, so files under ./prefabs
// on disk shadow the embedded copies.
func LoadCatalog() (*Catalog, error) {
	var (
		cat Catalog
		err error
	)
	if cat.Enemies, err = loadTable[EnemyStat]("enemies.yaml", enemyRequired); err != nil {
		return nil, err
	}
	if cat.Regions, err = loadTable[RegionStat]("regions.yaml", regionRequired); err != nil {
		return nil, err
	}
	if cat.Patterns, err = loadTable[PatternDefaults]("patterns.yaml", patternRequired); err != nil {
		return nil, err
	}
	if cat.Swords, err = loadTable[SwordStat]("sword.yaml", swordRequired); err != nil {
		return nil, err
	}
	if cat.Player, err = loadSpec[PlayerStat]("player.yaml", playerRequired); err != nil {
		return nil, err
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Enemy returns the stats of an enemy type.
func (c *Catalog) Enemy(name string) (EnemyStat, bool) {
	if c == nil {
		return EnemyStat{}, false
	}
	s, ok := c.Enemies[name]
	return s, ok
}

func (c *Catalog) Region(name string) (RegionStat, bool) {
	if c == nil {
		return RegionStat{}, false
	}
	s, ok := c.Regions[name]
	return s, ok
}

func (c *Catalog) Pattern(name string) (PatternDefaults, bool) {
	if c == nil {
		return PatternDefaults{}, false
	}
	s, ok := c.Patterns[name]
	return s, ok
}

func (c *Catalog) Sword(name string) (SwordStat, bool) {
	if c == nil {
		return SwordStat{}, false
	}
	s, ok := c.Swords[name]
	return s, ok
}

// EnemyTypes returns the sorted enemy type names.
func (c *Catalog) EnemyTypes() []string { return sortedKeys(c.Enemies) }

func (c *Catalog) RegionTypes() []string { return sortedKeys(c.Regions) }

func (c *Catalog) PatternTypes() []string { return sortedKeys(c.Patterns) }

func (c *Catalog) validate() error {
	for name, r := range c.Regions {
		switch r.Kind {
		case RegionKindWall, RegionKindFloor, RegionKindObject:
		case RegionKindLiquid:
			if r.SpeedFactor <= 0 || r.SpeedFactor > 1 {
				return fmt.Errorf("prefabs: regions.yaml: %s: speed_factor %v outside (0,1]", name, r.SpeedFactor)
			}
			if r.DamagePerSec < 0 {
				return fmt.Errorf("prefabs: regions.yaml: %s: negative damage_per_sec", name)
			}
		default:
			return fmt.Errorf("prefabs: regions.yaml: %s: unknown kind %q", name, r.Kind)
		}
	}
	for name, e := range c.Enemies {
		if e.Size <= 0 {
			return fmt.Errorf("prefabs: enemies.yaml: %s: size must be positive", name)
		}
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("prefabs: player.yaml: radius must be positive")
	}
	for name, s := range c.Swords {
		if s.SwingTime <= 0 {
			return fmt.Errorf("prefabs: sword.yaml: %s: swing_time must be positive", name)
		}
	}
	return nil
}

// LoadSpec decodes a single-document prefab file, rejecting unknown keys.
func LoadSpec[T any](filename string) (T, error) {
	return loadSpec[T](filename, nil)
}

func loadSpec[T any](filename string, required []string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data, required)
}

func loadTable[T any](filename string, required []string) (map[string]T, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeTable[T](filename, data, required)
}

// DecodeSpec decodes one mapping into T and checks the required keys.
func DecodeSpec[T any](name string, data []byte, required []string) (T, error) {
	var zero T

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if err := requireKeys(name, raw, required); err != nil {
		return zero, err
	}

	var spec T
	if err := decodeStrict(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

// DecodeTable decodes a mapping of named entries into T, checking the
// required keys of every entry.
func DecodeTable[T any](name string, data []byte, required []string) (map[string]T, error) {
	var raw map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	for _, entry := range sortedKeys(raw) {
		if err := requireKeys(name+": "+entry, raw[entry], required); err != nil {
			return nil, err
		}
	}

	out := make(map[string]T, len(raw))
	if err := decodeStrict(data, &out); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return out, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func requireKeys(where string, raw map[string]yaml.Node, required []string) error {
	for _, key := range required {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: %s: %s", ErrMissingField, where, key)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, white when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var parts [4]uint8
	parts[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		parts[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	return nil
}
