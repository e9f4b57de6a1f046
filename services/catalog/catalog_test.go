package catalog

import (
	"reflect"
	"strconv"
	"testing"
)

func TestListServicesReturnsFixedCatalog(t *testing.T) {
	services := ListServices()
	if len(services) != 12 {
		t.Fatalf("expected 12 services, got %d", len(services))
	}
	for i, svc := range services {
		want := strconv.Itoa(i + 1)
		if svc.ID != want {
			t.Fatalf("service %d: expected id %q, got %q", i, want, svc.ID)
		}
		if svc.Name == "" || svc.Description == "" || svc.Icon == "" || svc.Price == "" {
			t.Fatalf("service %s has an empty field: %+v", svc.ID, svc)
		}
	}
}

func TestListServicesStableAcrossCalls(t *testing.T) {
	first := ListServices()
	second := ListServices()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("catalog differs across calls")
	}
}

func TestListServicesCallerCannotMutateCatalog(t *testing.T) {
	tampered := ListServices()
	tampered[0].Name = "changed"

	fresh := ListServices()
	if fresh[0].Name == "changed" {
		t.Fatalf("mutating a returned slice leaked into the catalog")
	}
}
