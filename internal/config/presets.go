package config

import "sort"

// Presets are common factory loads paired with a typical rifle weight.
var Presets = map[string]InputsConfig{
	"308win": {Projectile: 168, Velocity: 2650, RifleWeight: 12},
	"223rem": {Projectile: 55, Velocity: 3240, RifleWeight: 8},
	"65cm":   {Projectile: 140, Velocity: 2710, RifleWeight: 11},
	"300wm":  {Projectile: 190, Velocity: 2900, RifleWeight: 14},
	"338lm":  {Projectile: 300, Velocity: 2720, RifleWeight: 18},
	"243win": {Projectile: 95, Velocity: 3000, RifleWeight: 9},
	"4570":   {Projectile: 405, Velocity: 1330, RifleWeight: 8},
}

var presetInfo = map[string]string{
	"308win": ".308 Winchester, 168gr match",
	"223rem": ".223 Remington, 55gr FMJ",
	"65cm":   "6.5 Creedmoor, 140gr ELD-M",
	"300wm":  ".300 Win Mag, 190gr match",
	"338lm":  ".338 Lapua Magnum, 300gr",
	"243win": ".243 Winchester, 95gr SST",
	"4570":   ".45-70 Government, 405gr lead",
}

// GetPreset returns a default config carrying the preset's inputs.
func GetPreset(name string) *Config {
	in, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Inputs = in
	return cfg
}

func PresetInfo(name string) string {
	return presetInfo[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
