package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPhysicsConfigIsValid(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultPhysicsConfig().Validate() error: %v", err)
	}

	if cfg.Collision.Tolerance != 10 {
		t.Errorf("default tolerance = %v, want 10", cfg.Collision.Tolerance)
	}
	if cfg.Gravity.Y != 800 {
		t.Errorf("default gravity Y = %v, want 800", cfg.Gravity.Y)
	}
}

func TestLoadPhysicsConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, PhysicsConfig)
	}{
		{
			name: "partial file keeps defaults",
			yamlContent: `
ball:
  radius: 7
  elasticity: 0.9
  friction: 0.1
gravity: {x: 0, y: 2000}
`,
			validate: func(t *testing.T, cfg PhysicsConfig) {
				if cfg.Ball.Radius != 7 {
					t.Errorf("ball radius = %v, want 7", cfg.Ball.Radius)
				}
				if cfg.Ball.Mass != 1 {
					t.Errorf("ball mass = %v, want default 1", cfg.Ball.Mass)
				}
				if cfg.Gravity.Y != 2000 {
					t.Errorf("gravity Y = %v, want 2000", cfg.Gravity.Y)
				}
				if cfg.Launcher.Stiffness != 1000 {
					t.Errorf("launcher stiffness = %v, want default 1000", cfg.Launcher.Stiffness)
				}
			},
		},
		{
			name: "segment surface inline",
			yamlContent: `
segment:
  thickness: 4
  elasticity: 0.3
  friction: 0.6
`,
			validate: func(t *testing.T, cfg PhysicsConfig) {
				if cfg.Segment.Thickness != 4 || cfg.Segment.Elasticity != 0.3 || cfg.Segment.Friction != 0.6 {
					t.Errorf("segment = %+v, want thickness 4 elasticity 0.3 friction 0.6", cfg.Segment)
				}
			},
		},
		{
			name: "zero tolerance",
			yamlContent: `
collision:
  tolerance: 0
`,
			wantErr:     true,
			errContains: "collision.tolerance",
		},
		{
			name: "negative ball mass",
			yamlContent: `
ball:
  mass: -1
`,
			wantErr:     true,
			errContains: "ball.mass",
		},
		{
			name: "elasticity out of range",
			yamlContent: `
staticPoly:
  elasticity: 1.5
`,
			wantErr:     true,
			errContains: "staticPoly elasticity",
		},
		{
			name: "degenerate flipper polygon",
			yamlContent: `
flipper:
  polygon:
    - {x: 0, y: 0}
    - {x: 1, y: 1}
`,
			wantErr:     true,
			errContains: "flipper polygon",
		},
		{
			name:        "malformed yaml",
			yamlContent: "ball: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "physics.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			cfg, err := LoadPhysicsConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadPhysicsConfigMissingFile(t *testing.T) {
	_, err := LoadPhysicsConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read physics config") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestShippedPhysicsConfig 确保随程序发布的 data/physics.yaml 可以通过验证
func TestShippedPhysicsConfig(t *testing.T) {
	cfg, err := LoadPhysicsConfig(filepath.Join("..", "..", "data", "physics.yaml"))
	if err != nil {
		t.Fatalf("LoadPhysicsConfig(data/physics.yaml) error: %v", err)
	}

	def := DefaultPhysicsConfig()
	if cfg.Ball != def.Ball {
		t.Errorf("shipped ball config %+v differs from defaults %+v", cfg.Ball, def.Ball)
	}
	if cfg.Launcher != def.Launcher {
		t.Errorf("shipped launcher config %+v differs from defaults %+v", cfg.Launcher, def.Launcher)
	}
}

func TestMirroredFlipperPolygon(t *testing.T) {
	cfg := DefaultPhysicsConfig()
	left := cfg.MirroredFlipperPolygon()

	want := []Vec2{{X: -10, Y: -10}, {X: 50, Y: 0}, {X: -10, Y: 10}}
	if len(left) != len(want) {
		t.Fatalf("len = %d, want %d", len(left), len(want))
	}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, left[i], want[i])
		}
	}

	// 镜像不能修改原始顶点
	if cfg.Flipper.Polygon[0].X != 10 {
		t.Errorf("original polygon modified: %+v", cfg.Flipper.Polygon)
	}
}

func TestGridCell(t *testing.T) {
	colWidth, rowHeight := GridCell(GameWindowWidth, GameWindowHeight)
	if colWidth != 160 || rowHeight != 120 {
		t.Errorf("GridCell(800, 600) = (%v, %v), want (160, 120)", colWidth, rowHeight)
	}

	// 整数除法
	colWidth, rowHeight = GridCell(803, 604)
	if colWidth != 160 || rowHeight != 120 {
		t.Errorf("GridCell(803, 604) = (%v, %v), want (160, 120)", colWidth, rowHeight)
	}
}
