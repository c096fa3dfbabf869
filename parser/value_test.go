package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
)

func TestNodeValue(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
zeta: 1
alpha: [x, 2.5, false, ~]
date: 2023-01-01
nested:
  b: <tag>
  a: "quoted"
`), &node))

	v := NodeValue(&node)
	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "date", "nested"}, obj.Keys())
	assert.Equal(t, 4, obj.Len())

	zeta, _ := obj.Get("zeta")
	assert.Equal(t, 1, zeta)
	alpha, _ := obj.Get("alpha")
	assert.Equal(t, []any{"x", 2.5, false, nil}, alpha)
	date, _ := obj.Get("date")
	assert.Equal(t, "2023-01-01", date, "timestamps stay as written")

	b, err := jsonutil.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":["x",2.5,false,null],"date":"2023-01-01","nested":{"b":"<tag>","a":"quoted"}}`, string(b))
}

func TestJSONValue_NonFinite(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
ratio: .nan
limits: [1, .inf, -.Inf]
`), &node))

	obj, ok := NodeValue(&node).(*Object)
	require.True(t, ok)
	ratio, _ := obj.Get("ratio")
	assert.IsType(t, float64(0), ratio, "NaN stays a float until it is encoded")

	b, err := jsonutil.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"ratio":null,"limits":[1,null,null]}`, string(b))

	assert.Nil(t, JSONValue(math.Inf(1)))
	assert.Equal(t, 2.5, JSONValue(2.5))
}

func TestObject_Set(t *testing.T) {
	o := NewObject()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	assert.Equal(t, []string{"b", "a"}, o.Keys())
	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	var nilObj *Object
	assert.Equal(t, 0, nilObj.Len())
	b, err := nilObj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
