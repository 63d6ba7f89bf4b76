package gopaginator

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Config
		wantErr bool
	}{
		{
			name: "empty document uses defaults",
			in:   "",
			want: DefaultConfig(),
		},
		{
			name: "partial document keeps other defaults",
			in:   "window: 2\nouter_window: 1\n",
			want: Config{Window: 2, OuterWindow: 1, Left: DefaultLeft, Right: DefaultRight},
		},
		{
			name: "all fields",
			in:   "window: 1\nouter_window: 3\nleft: 2\nright: 5\n",
			want: Config{Window: 1, OuterWindow: 3, Left: 2, Right: 5},
		},
		{
			name:    "unknown key",
			in:      "windw: 3\n",
			wantErr: true,
		},
		{
			name:    "negative value",
			in:      "left: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed value",
			in:      "window: wide\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.in))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Config_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		opts    Options
		want    Parameters
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  DefaultConfig(),
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 4, Left: 0, Right: 0},
		},
		{
			name: "unset sides fall back to the outer window",
			cfg:  Config{Window: 2, OuterWindow: 3},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 2, Left: 3, Right: 3},
		},
		{
			name: "explicit zero sides are kept",
			cfg:  Config{Window: 2, OuterWindow: 3},
			opts: Options{Left: lo.ToPtr(0), Right: lo.ToPtr(0)},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 2, Left: 0, Right: 0},
		},
		{
			name: "configured sides win over the outer window",
			cfg:  Config{Window: 2, OuterWindow: 3, Left: 1, Right: 2},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 2, Left: 1, Right: 2},
		},
		{
			name: "outer window option",
			cfg:  Config{Window: 2, OuterWindow: 3},
			opts: Options{OuterWindow: lo.ToPtr(1)},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 2, Left: 1, Right: 1},
		},
		{
			name: "window option wins over inner window",
			cfg:  DefaultConfig(),
			opts: Options{Window: lo.ToPtr(1), InnerWindow: lo.ToPtr(2)},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 1},
		},
		{
			name: "inner window option wins over config",
			cfg:  DefaultConfig(),
			opts: Options{InnerWindow: lo.ToPtr(2)},
			want: Parameters{CurrentPage: 3, TotalPages: 10, Window: 2},
		},
		{
			name:    "negative option",
			cfg:     DefaultConfig(),
			opts:    Options{Right: lo.ToPtr(-1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Resolve(3, 10, tt.opts)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidParameters)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Config_Resolve_InvalidPosition(t *testing.T) {
	_, err := DefaultConfig().Resolve(0, 10, Options{})
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = DefaultConfig().Resolve(1, -1, Options{})
	require.ErrorIs(t, err, ErrInvalidParameters)

	params, err := DefaultConfig().Resolve(20, 10, Options{})
	require.NoError(t, err, "current page past the end is allowed")
	assert.Equal(t, 20, params.CurrentPage)
}

func Test_ParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		in      map[OptionKey]int
		want    Options
		closest string
	}{
		{
			name: "empty bag",
			in:   nil,
			want: Options{},
		},
		{
			name: "all keys",
			in:   map[OptionKey]int{"window": 1, "inner_window": 2, "outer_window": 3, "left": 0, "right": 5},
			want: Options{
				Window:      lo.ToPtr(1),
				InnerWindow: lo.ToPtr(2),
				OuterWindow: lo.ToPtr(3),
				Left:        lo.ToPtr(0),
				Right:       lo.ToPtr(5),
			},
		},
		{
			name:    "misspelled right",
			in:      map[OptionKey]int{"rigth": 1},
			closest: "right",
		},
		{
			name:    "misspelled outer window",
			in:      map[OptionKey]int{"outer-window": 1},
			closest: "outer_window",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.in)
			if tt.closest != "" {
				require.ErrorIs(t, err, ErrUnknownOption)
				assert.Contains(t, err.Error(), "closest: '"+tt.closest+"'")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Parameters_Validate(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
		ok     bool
	}{
		{"valid", Parameters{CurrentPage: 1, TotalPages: 0}, true},
		{"zero current page", Parameters{CurrentPage: 0, TotalPages: 3}, false},
		{"negative total", Parameters{CurrentPage: 1, TotalPages: -1}, false},
		{"negative window", Parameters{CurrentPage: 1, Window: -1}, false},
		{"negative left", Parameters{CurrentPage: 1, Left: -1}, false},
		{"negative right", Parameters{CurrentPage: 1, Right: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}
