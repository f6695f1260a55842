package gamemath

import "testing"

func TestClosestOnSegment(t *testing.T) {
	a, b := Vec3{Z: 1}, Vec3{Z: 4}
	tests := []struct {
		name  string
		p     Vec3
		want  Vec3
		wantT float64
	}{
		{"beside the middle", Vec3{X: 0.5, Z: 2.5}, Vec3{Z: 2.5}, 0.5},
		{"before the start", Vec3{Z: -2}, a, 0},
		{"past the end", Vec3{Z: 9}, b, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotT := ClosestOnSegment(a, b, tt.p)
			if got.Sub(tt.want).Len() > 1e-9 || gotT != tt.wantT {
				t.Fatalf("got %+v at %v, want %+v at %v", got, gotT, tt.want, tt.wantT)
			}
		})
	}

	if got, gotT := ClosestOnSegment(a, a, Vec3{X: 3}); got != a || gotT != 0 {
		t.Fatalf("degenerate segment gave %+v at %v", got, gotT)
	}
}
