package enhancedenum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasujm/enhanced-enum/internal/testfixtures"
	"github.com/jasujm/enhanced-enum/ir"
	"github.com/jasujm/enhanced-enum/naming"
	"github.com/jasujm/enhanced-enum/valuetype"
)

// statusEnumeration is a user defined Enumeration, like the adapters built
// for Go source enums.
type statusEnumeration struct{}

func (statusEnumeration) EnumTypeName() string { return "Status" }
func (statusEnumeration) EnumMembers() []Member {
	return []Member{
		{Name: "INITIALIZING", Value: "initializing"},
		{Name: "WAITING_FOR_INPUT", Value: "waitingForInput"},
		{Name: "BUSY", Value: "busy"},
	}
}
func (statusEnumeration) EnumDocstring() string { return testfixtures.StatusDocstring }

func statusDescription() Description {
	return Description{
		TypeName:  "Status",
		Docstring: testfixtures.StatusDocstring,
		Members: []Member{
			{Name: "INITIALIZING", Value: "initializing"},
			{Name: "WAITING_FOR_INPUT", Value: "waitingForInput"},
			{Name: "BUSY", Value: "busy"},
		},
	}
}

func requireErrorCode(t *testing.T, err error, code ErrorCode) *Error {
	t.Helper()
	require.Error(t, err)
	var e *Error
	require.True(t, errors.As(err, &e), "error %v is not *Error", err)
	assert.Equal(t, code, e.Code)
	return e
}

func TestMakeDefinition_InputShapes(t *testing.T) {
	desc := statusDescription()
	tests := []struct {
		name  string
		input any
	}{
		{"map", testfixtures.StatusMap()},
		{"description", desc},
		{"description pointer", &desc},
		{"enumeration", statusEnumeration{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := MakeDefinition(tt.input, DefinitionOptions{})
			require.NoError(t, err)
			assert.Equal(t, testfixtures.StatusDefinition(), def)
		})
	}
}

func TestMakeDefinition_DerivedNames(t *testing.T) {
	def, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, "StatusLabel", def.LabelTypeName)
	assert.Equal(t, "EnhancedStatus", def.EnhancedTypeName)
	assert.Equal(t, "Statuses", def.AssociateNamespaceName)
	assert.Equal(t, "std::string_view", def.ValueTypeName)
	assert.Equal(t, []string{"INITIALIZING", "WAITING_FOR_INPUT", "BUSY"}, memberNames(def))

	constants := make([]string, len(def.Members))
	initializers := make([]string, len(def.Members))
	for i, m := range def.Members {
		constants[i] = m.ValueConstantName
		initializers[i] = m.ValueInitializers.String()
	}
	assert.Equal(t, []string{"INITIALIZING_VALUE", "WAITING_FOR_INPUT_VALUE", "BUSY_VALUE"}, constants)
	assert.Equal(t, []string{`"initializing"`, `"waitingForInput"`, `"busy"`}, initializers)
}

func TestMakeDefinition_CaseStyles(t *testing.T) {
	tests := []struct {
		typename  string
		label     string
		enhanced  string
		namespace string
	}{
		{"Status", "StatusLabel", "EnhancedStatus", "Statuses"},
		{"status", "status_label", "enhanced_status", "statuses"},
		{"TaskStatus", "TaskStatusLabel", "EnhancedTaskStatus", "TaskStatuses"},
		{"task_status", "task_status_label", "enhanced_task_status", "task_statuses"},
		{"taskStatus", "taskStatusLabel", "enhancedTaskStatus", "taskStatuses"},
		{"TASK_STATUS", "TASK_STATUS_LABEL", "ENHANCED_TASK_STATUS", "TASK_STATUSES"},
		{"Color", "ColorLabel", "EnhancedColor", "Colors"},
	}
	for _, tt := range tests {
		t.Run(tt.typename, func(t *testing.T) {
			def, err := MakeDefinition(Description{
				TypeName: tt.typename,
				Members:  []Member{{Name: "first", Value: 1}},
			}, DefinitionOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.label, def.LabelTypeName)
			assert.Equal(t, tt.enhanced, def.EnhancedTypeName)
			assert.Equal(t, tt.namespace, def.AssociateNamespaceName)
		})
	}
}

func TestMakeDefinition_MemberCaseStyle(t *testing.T) {
	def, err := MakeDefinition(Description{
		TypeName: "Status",
		Members: []Member{
			{Name: "stillInitializing", Value: 0},
			{Name: "waitingForInput", Value: 1},
		},
	}, DefinitionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "stillInitializingValue", def.Members[0].ValueConstantName)
	assert.Equal(t, "waitingForInputValue", def.Members[1].ValueConstantName)
}

func TestMakeDefinition_PrimaryType(t *testing.T) {
	t.Run("label", func(t *testing.T) {
		def, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{PrimaryType: ir.PrimaryLabel})
		require.NoError(t, err)
		assert.Equal(t, "Status", def.LabelTypeName)
		assert.Equal(t, "EnhancedStatus", def.EnhancedTypeName)
		assert.Equal(t, testfixtures.StatusDocumentation(), *def.LabelDocumentation)
		assert.Nil(t, def.EnhancedDocumentation)
	})

	t.Run("enhanced", func(t *testing.T) {
		def, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{PrimaryType: ir.PrimaryEnhanced})
		require.NoError(t, err)
		assert.Equal(t, "StatusLabel", def.LabelTypeName)
		assert.Equal(t, "Status", def.EnhancedTypeName)
		assert.Nil(t, def.LabelDocumentation)
		assert.Equal(t, testfixtures.StatusDocumentation(), *def.EnhancedDocumentation)
	})

	t.Run("unset attaches no documentation", func(t *testing.T) {
		def, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{})
		require.NoError(t, err)
		assert.False(t, def.HasDocumentation())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{PrimaryType: "both"})
		e := requireErrorCode(t, err, CodeInvalidOption)
		assert.Contains(t, e.Error(), "PrimaryType")
	})
}

func TestMakeDefinition_NestedValue(t *testing.T) {
	def, err := MakeDefinition(testfixtures.NestedMap(), DefinitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, "std::tuple<long, std::tuple<std::string_view, bool>>", def.ValueTypeName)
	require.Len(t, def.Members, 1)
	assert.Equal(t,
		ir.List(ir.Scalar("0"), ir.List(ir.Scalar(`"string"`), ir.Scalar("true"))),
		def.Members[0].ValueInitializers)
	assert.Equal(t, "enumerator_value", def.Members[0].ValueConstantName)
}

func TestMakeDefinition_ExplicitValueType(t *testing.T) {
	def, err := MakeDefinition(testfixtures.StatusMap(), DefinitionOptions{ValueType: "std::string"})
	require.NoError(t, err)
	assert.Equal(t, "std::string", def.ValueTypeName)
	assert.Equal(t, `"busy"`, def.Members[2].ValueInitializers.String())
}

func TestMakeDefinition_ExplicitValueTypeSkipsDeduction(t *testing.T) {
	def, err := MakeDefinition(Description{
		TypeName: "Mixed",
		Members: []Member{
			{Name: "A", Value: "text"},
			{Name: "B", Value: 1},
		},
	}, DefinitionOptions{ValueType: "Variant"})
	require.NoError(t, err)
	assert.Equal(t, "Variant", def.ValueTypeName)
}

func TestMakeDefinition_DefinitionPassesThrough(t *testing.T) {
	want := testfixtures.StatusDefinition()

	got, err := MakeDefinition(want, DefinitionOptions{PrimaryType: ir.PrimaryLabel})
	require.NoError(t, err)
	assert.Same(t, want, got)

	got, err = MakeDefinition(*want, DefinitionOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMakeDefinition_InvalidInput(t *testing.T) {
	var nilDef *ir.EnumDefinition
	var nilDesc *Description
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nil definition", nilDef},
		{"nil description", nilDesc},
		{"string", "Status"},
		{"int", 42},
		{"slice", []any{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeDefinition(tt.input, DefinitionOptions{})
			requireErrorCode(t, err, CodeInvalidInput)
		})
	}
}

func TestMakeDefinition_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{
			name:  "missing typename",
			input: map[string]any{"members": []any{}},
		},
		{
			name:  "missing members",
			input: map[string]any{"typename": "Status"},
		},
		{
			name:  "non-string typename",
			input: map[string]any{"typename": 1, "members": []any{}},
		},
		{
			name: "members as mapping",
			input: map[string]any{
				"typename": "Status",
				"members":  map[string]any{"BUSY": "busy"},
			},
		},
		{
			name: "member without value",
			input: map[string]any{
				"typename": "Status",
				"members":  []any{map[string]any{"name": "BUSY"}},
			},
		},
		{
			name: "member without name",
			input: map[string]any{
				"typename": "Status",
				"members":  []any{map[string]any{"value": "busy"}},
			},
		},
		{
			name:    "no members",
			input:   Description{TypeName: "Status"},
			wantErr: valuetype.ErrEmptySample,
		},
		{
			name:    "invalid typename",
			input:   Description{TypeName: "not-an-identifier", Members: []Member{{Name: "A", Value: 1}}},
			wantErr: naming.ErrNoCommonCase,
		},
		{
			name: "mixed member case styles",
			input: Description{TypeName: "Status", Members: []Member{
				{Name: "snake_case", Value: 1},
				{Name: "UPPER_CASE", Value: 2},
			}},
			wantErr: naming.ErrNoCommonCase,
		},
		{
			name: "incompatible values",
			input: Description{TypeName: "Status", Members: []Member{
				{Name: "A", Value: "text"},
				{Name: "B", Value: 1},
			}},
			wantErr: valuetype.ErrIncompatibleTypes,
		},
		{
			name: "unsupported value",
			input: Description{TypeName: "Status", Members: []Member{
				{Name: "A", Value: struct{}{}},
			}},
			wantErr: valuetype.ErrUnsupportedValue,
		},
		{
			name: "duplicate member",
			input: Description{TypeName: "Status", Members: []Member{
				{Name: "A", Value: 1},
				{Name: "A", Value: 2},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeDefinition(tt.input, DefinitionOptions{})
			requireErrorCode(t, err, CodeInvalidDefinition)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMakeDefinition_MapMemberShapes(t *testing.T) {
	input := map[string]any{
		"typename": "Status",
		"members": []map[string]any{
			{"name": "A", "value": 1},
			{"name": "B", "value": 2},
		},
	}
	def, err := MakeDefinition(input, DefinitionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "long", def.ValueTypeName)
	assert.Equal(t, []string{"A", "B"}, memberNames(def))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		typename string
		want     string
	}{
		{"Status", "status.hh"},
		{"TaskStatus", "task_status.hh"},
		{"task_status", "task_status.hh"},
		{"TASK_STATUS", "task_status.hh"},
		{"taskStatus", "task_status.hh"},
	}
	for _, tt := range tests {
		t.Run(tt.typename, func(t *testing.T) {
			got, err := FileName(tt.typename)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FileName("bad name")
	requireErrorCode(t, err, CodeInvalidDefinition)
}

func memberNames(def *ir.EnumDefinition) []string {
	names := make([]string, len(def.Members))
	for i, m := range def.Members {
		names[i] = m.Name
	}
	return names
}
