package diff

import (
	"reflect"
	"testing"
)

func TestChanged(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   []string
	}{
		{
			name: "no differences",
			fields: []Field{
				{Key: "dns1", Desired: "8.8.8.8", Current: "8.8.8.8"},
				{Key: "dns2", Desired: "8.8.4.4", Current: "8.8.4.4"},
			},
			want: nil,
		},
		{
			name: "case-insensitive match is not a change",
			fields: []Field{
				{Key: "network_type", Desired: "Basic", Current: "basic"},
			},
			want: nil,
		},
		{
			name: "undeclared attributes are skipped",
			fields: []Field{
				{Key: "dns1", Desired: "", Current: "8.8.8.8"},
				{Key: "dns2", Desired: "4.4.4.4", Current: "8.8.4.4"},
			},
			want: []string{"dns2"},
		},
		{
			name: "input order preserved",
			fields: []Field{
				{Key: "dns2", Desired: "1.1.1.1", Current: "8.8.4.4"},
				{Key: "dns1", Desired: "9.9.9.9", Current: "8.8.8.8"},
			},
			want: []string{"dns2", "dns1"},
		},
		{
			name: "declared value differing from empty current",
			fields: []Field{
				{Key: "network_domain", Desired: "example.com", Current: ""},
			},
			want: []string{"network_domain"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Changed(tt.fields)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Changed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		absent  bool
		changed []string
		want    Op
	}{
		{name: "absent and missing is a no-op", exists: false, absent: true, want: OpNone},
		{name: "absent and existing deletes", exists: true, absent: true, want: OpDelete},
		{name: "missing creates", exists: false, absent: false, want: OpCreate},
		{name: "existing with drift updates", exists: true, changed: []string{"dns1"}, want: OpUpdate},
		{name: "existing without drift is a no-op", exists: true, want: OpNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Resolve(tt.exists, tt.absent, tt.changed)
			if plan.Op != tt.want {
				t.Errorf("Resolve() = %v, want %v", plan.Op, tt.want)
			}
			if tt.want == OpUpdate && !reflect.DeepEqual(plan.Fields, tt.changed) {
				t.Errorf("Resolve() fields = %v, want %v", plan.Fields, tt.changed)
			}
		})
	}
}
