package fluent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/goliatone/go-fluent"
)

func TestParseResourceKeepsOrder(t *testing.T) {
	src := `
comment: Shared strings.
terms:
  -brand: Acme
messages:
  hello: Hello
  login:
    comment: Login form.
    value: Log in
    attributes:
      title: Sign in
`
	res, err := fluent.ParseResource("main.yaml", []byte(src))
	require.NoError(t, err)
	require.Len(t, res.Body, 4)

	assert.Equal(t, &fluent.Comment{Content: "Shared strings."}, res.Body[0])

	term, ok := res.Body[1].(*fluent.Term)
	require.True(t, ok)
	assert.Equal(t, "brand", term.ID)
	assert.Equal(t, fluent.Text("Acme"), term.Value)

	hello, ok := res.Body[2].(*fluent.Message)
	require.True(t, ok)
	assert.Equal(t, "hello", hello.ID)

	login, ok := res.Body[3].(*fluent.Message)
	require.True(t, ok)
	assert.Equal(t, "Login form.", login.Comment)
	assert.Equal(t, fluent.Text("Log in"), login.Value)
	title, ok := login.Attribute("title")
	require.True(t, ok)
	assert.Equal(t, fluent.Text("Sign in"), title.Value)
}

func TestParseResourcePatterns(t *testing.T) {
	src := `
messages:
  greeting: ["Hi ", {var: $name}, "!"]
  total:
    fn: number
    args: [{var: amount}]
    named: {style: currency, currency: USD, minimumFractionDigits: 2}
  literal: {num: "1.50"}
  brand:
    term: brand
    attr: gender
    args: {case: genitive}
`
	res, err := fluent.ParseResource("main.yml", []byte(src))
	require.NoError(t, err)
	require.Len(t, res.Body, 4)

	greeting := res.Body[0].(*fluent.Message)
	assert.Equal(t, fluent.NewPattern("Hi ", &fluent.VariableReference{ID: "name"}, "!"), greeting.Value)

	total := res.Body[1].(*fluent.Message)
	require.Len(t, total.Value.Elements, 1)
	fn := total.Value.Elements[0].(*fluent.Placeable).Expression.(*fluent.FunctionReference)
	assert.Equal(t, "NUMBER", fn.ID)
	assert.Equal(t, []fluent.Expression{&fluent.VariableReference{ID: "amount"}}, fn.Arguments.Positional)
	assert.Equal(t, []fluent.NamedArgument{
		{Name: "style", Value: &fluent.StringLiteral{Value: "currency"}},
		{Name: "currency", Value: &fluent.StringLiteral{Value: "USD"}},
		{Name: "minimumFractionDigits", Value: &fluent.NumberLiteral{Value: "2"}},
	}, fn.Arguments.Named)

	literal := res.Body[2].(*fluent.Message)
	assert.Equal(t, fluent.NewPattern(&fluent.NumberLiteral{Value: "1.50"}), literal.Value)

	brand := res.Body[3].(*fluent.Message)
	assert.Equal(t, fluent.NewPattern(&fluent.TermReference{
		ID:        "brand",
		Attribute: "gender",
		Arguments: &fluent.CallArguments{Named: []fluent.NamedArgument{
			{Name: "case", Value: &fluent.StringLiteral{Value: "genitive"}},
		}},
	}), brand.Value)
}

func TestParseResourceSelect(t *testing.T) {
	src := `
messages:
  emails:
    select: {var: count}
    variants:
      - key: 0
        value: No emails
      - key: one
        value: One email
      - key: other
        default: true
        value: [{var: count}, " emails"]
  mood:
    select: {var: mood}
    variants:
      - key: "*happy"
        value: Yay
      - key: "-1"
        value: Negative
`
	res, err := fluent.ParseResource("emails.yaml", []byte(src))
	require.NoError(t, err)

	emails := res.Body[0].(*fluent.Message)
	sel := emails.Value.Elements[0].(*fluent.Placeable).Expression.(*fluent.SelectExpression)
	assert.Equal(t, &fluent.VariableReference{ID: "count"}, sel.Selector)
	require.Len(t, sel.Variants, 3)
	assert.Equal(t, &fluent.NumberLiteral{Value: "0"}, sel.Variants[0].Key)
	assert.Equal(t, &fluent.Identifier{Name: "one"}, sel.Variants[1].Key)
	assert.False(t, sel.Variants[1].Default)
	assert.True(t, sel.Variants[2].Default)

	mood := res.Body[1].(*fluent.Message)
	sel = mood.Value.Elements[0].(*fluent.Placeable).Expression.(*fluent.SelectExpression)
	assert.Equal(t, &fluent.Identifier{Name: "happy"}, sel.Variants[0].Key)
	assert.True(t, sel.Variants[0].Default)
	assert.Equal(t, &fluent.NumberLiteral{Value: "-1"}, sel.Variants[1].Key)
}

func TestParseResourceJunk(t *testing.T) {
	src := `
extras: true
messages:
  good: Fine
  broken: [{nope: 1}]
  empty: {comment: nothing else}
  unselected:
    select: {var: n}
`
	res, err := fluent.ParseResource("main.yaml", []byte(src))
	require.Error(t, err)
	require.NotNil(t, res)

	var junk []string
	var messages []string
	for _, entry := range res.Body {
		switch e := entry.(type) {
		case *fluent.Junk:
			junk = append(junk, e.Content)
		case *fluent.Message:
			messages = append(messages, e.ID)
		}
	}
	assert.Equal(t, []string{"extras", "broken", "empty", "unselected"}, junk)
	assert.Equal(t, []string{"good"}, messages)
	assert.Contains(t, err.Error(), "unknown section")
	assert.Contains(t, err.Error(), "broken")
}

func TestParseResourceFormats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		res, err := fluent.ParseResource("main.json", []byte(`{"messages": {"hi": "Hi there"}}`))
		require.NoError(t, err)
		require.Len(t, res.Body, 1)
		assert.Equal(t, fluent.Text("Hi there"), res.Body[0].(*fluent.Message).Value)
	})

	t.Run("no extension", func(t *testing.T) {
		_, err := fluent.ParseResource("main", []byte("messages: {hi: Hi}"))
		assert.NoError(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := fluent.ParseResource("main.ftl", []byte("hi = Hi"))
		assert.ErrorContains(t, err, "unsupported extension")
	})

	t.Run("empty document", func(t *testing.T) {
		res, err := fluent.ParseResource("main.yaml", nil)
		require.NoError(t, err)
		assert.Empty(t, res.Body)
	})

	t.Run("top level list", func(t *testing.T) {
		_, err := fluent.ParseResource("main.yaml", []byte("- hi"))
		assert.ErrorContains(t, err, "top level must be a mapping")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := fluent.ParseResource("main.yaml", []byte("messages: [unclosed"))
		assert.Error(t, err)
	})
}
