package openapi3

import (
	"github.com/sv-tools/openapi"
	"github.com/zhamlin/pathroute/openapi3/param"
)

type Operation struct {
	*openapi.Operation
}

func NewOperation() Operation {
	return Operation{
		Operation: &openapi.Operation{},
	}
}

func (o *Operation) GetParameter(name, in string) (param.Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Spec == nil {
			continue
		}

		hasLocation := in != ""
		sourceMatch := hasLocation && in == p.Spec.Spec.In
		nameMatch := p.Spec.Spec.Name == name

		if nameMatch && (sourceMatch || !hasLocation) {
			return param.Parameter{Parameter: p.Spec.Spec}, true
		}
	}
	return param.Parameter{}, false
}

func (o *Operation) AddParameter(param param.Parameter) {
	if o.Parameters == nil {
		o.Parameters = []*openapi.RefOrSpec[openapi.Extendable[openapi.Parameter]]{}
	}

	item := openapi.NewExtendable(param.Parameter)
	p := openapi.NewRefOrSpec[openapi.Extendable[openapi.Parameter]](item)
	o.Parameters = append(o.Parameters, p)
}
