package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "8", "-tps", "4", "-hud", "0"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "predation" || cfg.Scale != 8 || cfg.TPS != 4 || cfg.HUDWidth != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
