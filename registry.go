package wlclient

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/elliotcourant/wlclient/protocol"
	"github.com/elliotcourant/wlclient/wire"
)

// InterfaceDesc is what the registry advertised for one interface.
type InterfaceDesc struct {
	ObjectName wire.ObjectID
	Version    uint32
}

// Globals maps interface names to the global that provides them.
type Globals map[string]InterfaceDesc

// Apply folds a registry event into the map. A name announced twice keeps
// the last value. Other events are ignored and Apply reports false.
func (g Globals) Apply(event protocol.Event) bool {
	switch e := event.(type) {
	case *protocol.RegistryGlobalEvent:
		for iface, desc := range g {
			if desc.ObjectName == e.Name && iface != e.Interface {
				delete(g, iface)
			}
		}
		g[e.Interface] = InterfaceDesc{
			ObjectName: e.Name,
			Version:    e.Version,
		}
		return true
	case *protocol.RegistryGlobalRemoveEvent:
		for iface, desc := range g {
			if desc.ObjectName == e.Name {
				delete(g, iface)
			}
		}
		return true
	default:
		return false
	}
}

// Names returns the advertised interface names in order.
func (g Globals) Names() []string {
	names := make([]string, 0, len(g))
	linq.From(g).
		Select(func(i interface{}) interface{} {
			return i.(linq.KeyValue).Key
		}).
		Distinct().
		OrderBy(func(i interface{}) interface{} {
			return i
		}).
		ToSlice(&names)
	return names
}

func (g Globals) Clone() Globals {
	clone := make(Globals, len(g))
	for iface, desc := range g {
		clone[iface] = desc
	}
	return clone
}
