package config

import "testing"

// The shipped config.yaml has every provider disabled; loading it must
// succeed so the service can boot in local-only mode.
func TestLoad_DisabledProvidersBootLocalOnly(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no enabled providers: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	for _, p := range cfg.LLM.Providers {
		if p.Enabled {
			t.Fatalf("shipped config.yaml should have provider %s disabled", p.Name)
		}
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "no providers is local-only, not an error",
			cfg:     LLMConfig{},
			wantErr: false,
		},
		{
			name: "all providers disabled is local-only, not an error",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "openai", Enabled: false, Model: "gpt-4o-mini"},
					{Name: "ollama", Enabled: false, Model: "qwen2.5:7b"},
				},
			},
			wantErr: false,
		},
		{
			name: "valid enabled provider",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-4o-mini"},
				},
			},
			wantErr: false,
		},
		{
			name: "enabled provider missing model",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test"},
				},
			},
			wantErr: true,
		},
		{
			name: "enabled provider with non-positive priority",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 0, APIKey: "sk-test", Model: "gpt-4o-mini"},
				},
			},
			wantErr: true,
		},
		{
			name: "duplicate priorities among enabled providers",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-4o-mini"},
					{Name: "claude", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "claude-3-5-haiku-latest"},
				},
			},
			wantErr: true,
		},
		{
			name: "disabled provider is not field-validated",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Name: "claude", Enabled: false},
					{Name: "ollama", Enabled: true, Priority: 1, Model: "qwen2.5:7b"},
				},
			},
			wantErr: false,
		},
		{
			name: "provider without a name",
			cfg: LLMConfig{
				Providers: []ProviderConfig{
					{Enabled: false, Model: "gpt-4o-mini"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
