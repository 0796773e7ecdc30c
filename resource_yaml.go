package fluent

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFunc turns raw resource source into a Resource. name is the
// resource id and may be used to pick a format.
type ParseFunc func(name string, src []byte) (*Resource, error)

// ParseResource decodes a YAML or JSON catalog document. Entries that cannot
// be decoded become Junk and are reported in the returned error, while the
// rest of the resource is still returned.
func ParseResource(name string, src []byte) (*Resource, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case "", ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("fluent: decode %s: unsupported extension %s", name, ext)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("fluent: decode %s: %w", name, err)
	}

	res := &Resource{}
	if len(doc.Content) == 0 {
		return res, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fluent: decode %s: top level must be a mapping", name)
	}

	var errs []error
	for i := 0; i+1 < len(root.Content); i += 2 {
		section, body := root.Content[i].Value, root.Content[i+1]
		switch section {
		case "messages", "terms":
			errs = append(errs, decodeEntries(res, section == "terms", body)...)
		case "comment":
			res.Body = append(res.Body, &Comment{Content: body.Value})
		default:
			res.Body = append(res.Body, &Junk{Content: section})
			errs = append(errs, fmt.Errorf("fluent: decode %s: unknown section %q", name, section))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return res, fmt.Errorf("fluent: decode %s: %w", name, err)
	}
	return res, nil
}

func decodeEntries(res *Resource, terms bool, node *yaml.Node) []error {
	if node.Kind != yaml.MappingNode {
		return []error{fmt.Errorf("line %d: entries must be a mapping", node.Line)}
	}

	var errs []error
	for i := 0; i+1 < len(node.Content); i += 2 {
		id := strings.TrimPrefix(node.Content[i].Value, "-")
		value, attrs, comment, err := decodeEntry(node.Content[i+1])
		if err != nil {
			res.Body = append(res.Body, &Junk{Content: id})
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}

		if terms {
			res.Body = append(res.Body, &Term{ID: id, Value: value, Attributes: attrs, Comment: comment})
		} else {
			res.Body = append(res.Body, &Message{ID: id, Value: value, Attributes: attrs, Comment: comment})
		}
	}
	return errs
}

func decodeEntry(node *yaml.Node) (*Pattern, []*Attribute, string, error) {
	if node.Kind != yaml.MappingNode || !hasAnyKey(node, "value", "attributes", "comment") {
		value, err := decodePattern(node)
		return value, nil, "", err
	}

	var (
		value   *Pattern
		attrs   []*Attribute
		comment string
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, body := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "value":
			p, err := decodePattern(body)
			if err != nil {
				return nil, nil, "", err
			}
			value = p
		case "attributes":
			if body.Kind != yaml.MappingNode {
				return nil, nil, "", fmt.Errorf("line %d: attributes must be a mapping", body.Line)
			}
			for j := 0; j+1 < len(body.Content); j += 2 {
				p, err := decodePattern(body.Content[j+1])
				if err != nil {
					return nil, nil, "", fmt.Errorf("attribute %s: %w", body.Content[j].Value, err)
				}
				attrs = append(attrs, &Attribute{ID: body.Content[j].Value, Value: p})
			}
		case "comment":
			comment = body.Value
		default:
			return nil, nil, "", fmt.Errorf("line %d: unknown entry key %q", body.Line, key)
		}
	}

	if value == nil && len(attrs) == 0 {
		return nil, nil, "", errors.New("entry has neither value nor attributes")
	}
	return value, attrs, comment, nil
}

func decodePattern(node *yaml.Node) (*Pattern, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return Text(node.Value), nil
	case yaml.MappingNode:
		expr, err := decodeExpression(node)
		if err != nil {
			return nil, err
		}
		return NewPattern(expr), nil
	case yaml.SequenceNode:
		p := &Pattern{Elements: make([]PatternElement, 0, len(node.Content))}
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				p.Elements = append(p.Elements, &TextElement{Value: item.Value})
			case yaml.MappingNode:
				expr, err := decodeExpression(item)
				if err != nil {
					return nil, err
				}
				p.Elements = append(p.Elements, &Placeable{Expression: expr})
			default:
				return nil, fmt.Errorf("line %d: unsupported pattern element", item.Line)
			}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported pattern", node.Line)
	}
}

// decodeExpression reads a mapping holding exactly one expression key plus
// its modifiers (attr, args, named, variants).
func decodeExpression(node *yaml.Node) (Expression, error) {
	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		fields[node.Content[i].Value] = node.Content[i+1]
	}
	attr := ""
	if n, ok := fields["attr"]; ok {
		attr = n.Value
	}

	switch {
	case fields["str"] != nil:
		return &StringLiteral{Value: fields["str"].Value}, nil
	case fields["num"] != nil:
		raw := strings.TrimSpace(fields["num"].Value)
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("line %d: invalid number %q", fields["num"].Line, raw)
		}
		return &NumberLiteral{Value: raw}, nil
	case fields["var"] != nil:
		return &VariableReference{ID: strings.TrimPrefix(fields["var"].Value, "$")}, nil
	case fields["msg"] != nil:
		return &MessageReference{ID: fields["msg"].Value, Attribute: attr}, nil
	case fields["term"] != nil:
		ref := &TermReference{ID: strings.TrimPrefix(fields["term"].Value, "-"), Attribute: attr}
		if args, ok := fields["args"]; ok {
			named, err := decodeNamedArguments(args)
			if err != nil {
				return nil, err
			}
			ref.Arguments = &CallArguments{Named: named}
		}
		return ref, nil
	case fields["fn"] != nil:
		ref := &FunctionReference{ID: strings.ToUpper(fields["fn"].Value)}
		if args, ok := fields["args"]; ok {
			positional, err := decodePositionalArguments(args)
			if err != nil {
				return nil, err
			}
			ref.Arguments.Positional = positional
		}
		if named, ok := fields["named"]; ok {
			args, err := decodeNamedArguments(named)
			if err != nil {
				return nil, err
			}
			ref.Arguments.Named = args
		}
		return ref, nil
	case fields["select"] != nil:
		return decodeSelect(fields["select"], fields["variants"])
	case fields["placeable"] != nil:
		inner, err := decodeOperand(fields["placeable"])
		if err != nil {
			return nil, err
		}
		return &Placeable{Expression: inner}, nil
	default:
		return nil, fmt.Errorf("line %d: mapping is not an expression", node.Line)
	}
}

// decodeOperand reads an argument or selector. Bare scalars are literals,
// numeric ones become NumberLiteral.
func decodeOperand(node *yaml.Node) (Expression, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" || node.Tag == "!!float" {
			return &NumberLiteral{Value: node.Value}, nil
		}
		return &StringLiteral{Value: node.Value}, nil
	case yaml.MappingNode:
		return decodeExpression(node)
	default:
		return nil, fmt.Errorf("line %d: unsupported operand", node.Line)
	}
}

func decodePositionalArguments(node *yaml.Node) ([]Expression, error) {
	if node.Kind != yaml.SequenceNode {
		expr, err := decodeOperand(node)
		if err != nil {
			return nil, err
		}
		return []Expression{expr}, nil
	}

	out := make([]Expression, 0, len(node.Content))
	for _, item := range node.Content {
		expr, err := decodeOperand(item)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func decodeNamedArguments(node *yaml.Node) ([]NamedArgument, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: named arguments must be a mapping", node.Line)
	}

	out := make([]NamedArgument, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		expr, err := decodeOperand(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, NamedArgument{Name: node.Content[i].Value, Value: expr})
	}
	return out, nil
}

func decodeSelect(selector, variants *yaml.Node) (Expression, error) {
	sel, err := decodeOperand(selector)
	if err != nil {
		return nil, err
	}
	if variants == nil || variants.Kind != yaml.SequenceNode {
		return nil, errors.New("select requires a variants list")
	}

	expr := &SelectExpression{Selector: sel}
	for _, item := range variants.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: variant must be a mapping", item.Line)
		}

		variant := &Variant{}
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, body := item.Content[i].Value, item.Content[i+1]
			switch key {
			case "key":
				name := body.Value
				if strings.HasPrefix(name, "*") {
					variant.Default = true
					name = name[1:]
				}
				variant.Key = variantKey(name)
			case "value":
				p, err := decodePattern(body)
				if err != nil {
					return nil, err
				}
				variant.Value = p
			case "default":
				variant.Default = body.Value == "true"
			}
		}
		if variant.Key == nil {
			return nil, fmt.Errorf("line %d: variant without key", item.Line)
		}
		expr.Variants = append(expr.Variants, variant)
	}
	return expr, nil
}

func variantKey(name string) VariantKey {
	name = strings.TrimSpace(name)
	if name == "" || !strings.ContainsAny(name[:1], "-0123456789") {
		return &Identifier{Name: name}
	}
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		return &NumberLiteral{Value: name}
	}
	return &Identifier{Name: name}
}

func hasAnyKey(node *yaml.Node, keys ...string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		for _, key := range keys {
			if node.Content[i].Value == key {
				return true
			}
		}
	}
	return false
}
