package cxx

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/jasujm/enhanced-enum/ir"
)

func init() {
	if err := pongo2.RegisterFilter("initializer_list", filterInitializerList); err != nil {
		panic(err)
	}
}

// filterInitializerList renders an ir.Initializer as a braced initializer
// list, adding outer braces around scalars.
func filterInitializerList(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	list, ok := in.Interface().(ir.Initializer)
	if !ok {
		return nil, &pongo2.Error{
			Sender:    "filter:initializer_list",
			OrigError: fmt.Errorf("expected an initializer, got %T", in.Interface()),
		}
	}
	return pongo2.AsSafeValue(list.Braced()), nil
}
