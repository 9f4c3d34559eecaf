package prim

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"github.com/rashmirathi1729/liswat/internal/parser"
	"github.com/rashmirathi1729/liswat/internal/value"
)

var (
	stdinPort  = &value.Port{Name: "<stdin>", Reader: bufio.NewReader(os.Stdin), Input: true}
	stdoutPort = &value.Port{Name: "<stdout>", Writer: bufio.NewWriter(os.Stdout), Input: false}
)

func primOpenInputFile(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	path, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	f, oserr := os.Open(path)
	if oserr != nil {
		return nil, value.NewDefaultError("cannot open input file", errors.Wrap(oserr, "open-input-file"))
	}
	return &value.Port{Name: path, Reader: bufio.NewReader(f), Closer: f, Input: true}, nil
}

func primOpenOutputFile(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	path, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	f, oserr := os.Create(path)
	if oserr != nil {
		return nil, value.NewDefaultError("cannot open output file", errors.Wrap(oserr, "open-output-file"))
	}
	return &value.Port{Name: path, Writer: bufio.NewWriter(f), Closer: f, Input: false}, nil
}

func asPort(v value.Value) (*value.Port, *value.SchemeError) {
	p, ok := v.(*value.Port)
	if !ok {
		return nil, value.NewTypeMismatchError("port", v)
	}
	return p, nil
}

func primCloseInputPort(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	p, err := asPort(args[0])
	if err != nil {
		return nil, err
	}
	return value.Bool(p.Close()), nil
}

func primCloseOutputPort(args []value.Value) (value.Value, *value.SchemeError) {
	return primCloseInputPort(args)
}

func primRead(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) > 1 {
		return nil, value.NewNumArgsError("0 or 1", args)
	}
	port := stdinPort
	if len(args) == 1 {
		p, err := asPort(args[0])
		if err != nil {
			return nil, err
		}
		port = p
	}
	line, oserr := port.Reader.ReadString('\n')
	if oserr != nil && line == "" {
		return nil, value.NewDefaultError("read: end of input", errors.Wrap(oserr, "read"))
	}
	return parser.ReadOne(line)
}

func primWrite(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, value.NewNumArgsError("1 or 2", args)
	}
	port := stdoutPort
	if len(args) == 2 {
		p, err := asPort(args[1])
		if err != nil {
			return nil, err
		}
		port = p
	}
	port.Writer.WriteString(args[0].String())
	port.Writer.Flush()
	return value.Bool(true), nil
}

func primReadContents(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	path, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	data, oserr := os.ReadFile(path)
	if oserr != nil {
		return nil, value.NewDefaultError("cannot read file", errors.Wrap(oserr, "read-contents"))
	}
	return value.Str(string(data)), nil
}

func primReadAll(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	path, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	data, oserr := os.ReadFile(path)
	if oserr != nil {
		return nil, value.NewDefaultError("cannot read file", errors.Wrap(oserr, "read-all"))
	}
	vals, perr := parser.ReadAll(string(data))
	if perr != nil {
		return nil, perr
	}
	return value.List(vals), nil
}

func registerIOPure(t map[string]func([]value.Value) (value.Value, *value.SchemeError), apply Applier) {
	t["apply"] = func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 2 {
			return nil, value.NewNumArgsError("2", args)
		}
		argList, ok := args[1].(value.List)
		if !ok {
			return nil, value.NewTypeMismatchError("list", args[1])
		}
		return apply(args[0], argList)
	}
}

func ioTable() map[string]func([]value.Value) (value.Value, *value.SchemeError) {
	t := make(map[string]func([]value.Value) (value.Value, *value.SchemeError))
	t["open-input-file"] = primOpenInputFile
	t["open-output-file"] = primOpenOutputFile
	t["close-input-port"] = primCloseInputPort
	t["close-output-port"] = primCloseOutputPort
	t["read"] = primRead
	t["write"] = primWrite
	t["read-contents"] = primReadContents
	t["read-all"] = primReadAll
	return t
}

func pureTable(apply Applier) map[string]func([]value.Value) (value.Value, *value.SchemeError) {
	t := make(map[string]func([]value.Value) (value.Value, *value.SchemeError))
	registerNumeric(t)
	registerPredicates(t)
	registerLists(t)
	registerStrings(t)
	registerIOPure(t, apply)
	return t
}
