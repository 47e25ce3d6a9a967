package membership

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "silver", want: "Silver"},
		{in: "GOLD", want: "Gold"},
		{in: " Platinum ", want: "Platinum"},
		{in: "bronze", wantErr: true},
		{in: "", wantErr: true},
		{in: "diamond", wantErr: true},
	}
	for _, tt := range tests {
		p, err := Lookup(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPackage) {
				t.Fatalf("Lookup(%q) error = %v, want ErrInvalidPackage", tt.in, err)
			}
			if IsValid(tt.in) {
				t.Fatalf("IsValid(%q) = true, want false", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.in, err)
		}
		if p.Name != tt.want {
			t.Fatalf("Lookup(%q).Name = %q, want %q", tt.in, p.Name, tt.want)
		}
		if p.Badge() != tt.want {
			t.Fatalf("Badge() = %q, want %q", p.Badge(), tt.want)
		}
	}
}

func TestAllIsOrderedAndDetached(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].PriceCents <= all[i-1].PriceCents {
			t.Fatalf("All() not ordered by price at %d", i)
		}
	}
	all[0].Name = "changed"
	if All()[0].Name != "Silver" {
		t.Fatalf("All() shares its backing array with callers")
	}
}
