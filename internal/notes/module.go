package notes

import (
	"github.com/golddranks/pencil/internal/notes/inbound"
	"github.com/golddranks/pencil/internal/notes/store"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
	"github.com/golddranks/pencil/internal/pkg/pkguid"
)

type Dependency struct {
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

func New(dep Dependency) error {
	if dep.ID == nil {
		node, err := pkguid.NewSnowflakeNode(1)
		if err != nil {
			return err
		}
		dep.ID = node
	}

	inbound.RegisterHTTPEndpoint(dep.Router, store.NewInMemoryStore(dep.ID))

	return nil
}
