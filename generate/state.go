package generate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/mathieupost/chainbind/abi"
)

// State is the template view of one contract binding.
type State struct {
	FileName      string
	Package       string
	RuntimeImport string
	Name          string
	NeedsBig      bool

	Constants         []*Method
	ConstantFunctions []*Method
	Functions         []*Method
}

// Method is a bound contract method.
type Method struct {
	// Name is the ABI name, GoName the generated method name.
	Name      string
	GoName    string
	Receiver  string
	Signature string
	Selector  string
	Payable   bool

	Parameters []*Parameter
	// Results is empty for reads without outputs.
	Results []*Parameter
	// Output names the struct holding the results when there are several.
	Output string
}

type Parameter struct {
	Name string
	Type string
}

// Methods returns all bound methods in declaration order.
func (s *State) Methods() []*Method {
	methods := make([]*Method, 0, len(s.Constants)+len(s.ConstantFunctions)+len(s.Functions))
	methods = append(methods, s.Constants...)
	methods = append(methods, s.ConstantFunctions...)
	return append(methods, s.Functions...)
}

func newState(c *abi.Contract, ctx Context) (*State, error) {
	name := exportedName(ctx.FileName, "Contract")
	state := &State{
		FileName:      ctx.FileName,
		Package:       ctx.PackageName,
		RuntimeImport: ctx.RuntimeImportPath(),
		Name:          name,
	}
	methodNames := newNames("BoundContract")

	for _, d := range c.Constants {
		m, err := state.newMethod(methodNames.claim(exportedName(d.Name, "Call")), d.Name, nil, []abi.Type{d.Output}, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "constant %s", d.Name)
		}
		state.Constants = append(state.Constants, m)
	}

	for _, d := range c.ConstantFunctions {
		m, err := state.newMethod(methodNames.claim(exportedName(d.Name, "Call")), d.Name, d.Inputs, d.Outputs, d.OutputNames)
		if err != nil {
			return nil, errors.Wrapf(err, "constant function %s", d.Name)
		}
		state.ConstantFunctions = append(state.ConstantFunctions, m)
	}

	for _, d := range c.Functions {
		m, err := state.newMethod(methodNames.claim(exportedName(d.Name, "")+"Tx"), d.Name, d.Inputs, nil, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", d.Name)
		}
		m.Payable = d.Payable
		state.Functions = append(state.Functions, m)
	}

	return state, nil
}

func (s *State) newMethod(goName, name string, inputs []abi.Parameter, outputs []abi.Type, outputNames []string) (*Method, error) {
	sig := signature(name, inputs)
	m := &Method{
		Name:      name,
		GoName:    goName,
		Receiver:  s.Name,
		Signature: sig,
		Selector:  selector(sig),
	}

	params := newNames()
	for i, input := range inputs {
		typ, err := s.goType(input.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		m.Parameters = append(m.Parameters, &Parameter{
			Name: params.claim(paramName(input.Name, i)),
			Type: typ,
		})
	}

	fields := newNames()
	for i, output := range outputs {
		if _, ok := output.(abi.Void); ok {
			continue
		}
		typ, err := s.goType(output)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		outputName := ""
		if i < len(outputNames) {
			outputName = outputNames[i]
		}
		m.Results = append(m.Results, &Parameter{
			Name: fields.claim(exportedName(outputName, fmt.Sprintf("Out%d", i))),
			Type: typ,
		})
	}
	if len(m.Results) > 1 {
		m.Output = s.Name + goName + "Output"
	}

	return m, nil
}

func (s *State) goType(t abi.Type) (string, error) {
	typ, err := goType(t)
	if err != nil {
		return "", err
	}
	if strings.Contains(typ, "big.Int") {
		s.NeedsBig = true
	}
	return typ, nil
}
