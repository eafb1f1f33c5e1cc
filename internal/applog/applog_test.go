package applog

import "testing"

func TestNewTagsComponent(t *testing.T) {
	l := New("elements")
	if l == nil {
		t.Fatal("expected a non-nil logger")
	}
	if err := l.Log("msg", "test"); err != nil {
		t.Errorf("unexpected error logging: %v", err)
	}
}
