package internal

import "testing"

func TestInPackage(t *testing.T) {
	tests := []struct {
		fnName string
		want   bool
	}{
		{fnName: "github.com/zhamlin/pathroute.Compile", want: true},
		{fnName: "github.com/zhamlin/pathroute.(*Route).Match", want: true},
		{fnName: "github.com/zhamlin/pathroute/std.(*Mux).HandleFunc", want: true},
		{fnName: "github.com/zhamlin/pathroute/internal/test.Equal", want: true},
		{fnName: "github.com/zhamlin/pathroute/examples/codec.newMux", want: false},
		{fnName: "github.com/zhamlin/pathroute/examples.init", want: false},
		{fnName: "github.com/zhamlin/pathroute-extra.Register", want: false},
		{fnName: "main.newMux", want: false},
		{fnName: "runtime.goexit", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.fnName, func(t *testing.T) {
			if got := inPackage(tc.fnName); got != tc.want {
				t.Errorf("inPackage(%q) = %v, want %v", tc.fnName, got, tc.want)
			}
		})
	}
}
