package schema

import "strings"

// FieldKind - тип значения поля
type FieldKind uint8

const (
	KindString FieldKind = iota
	KindInt
	KindBool
)

func (k FieldKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Field описывает одно поле схемы игрового объекта.
// Формат совместим с JSON-документом игрового сервера (§ /api/schema).
type Field struct {
	Name      string `json:"name"`
	FieldType string `json:"field_type"` // "String", "bool", "Option<u32>", "Vec<SpriteCoord>"...
	Optional  bool   `json:"optional"`
	// Значение по умолчанию в строковом виде (как отдает сервер). nil = нет дефолта.
	Default *string `json:"default"`
	// Для каких типов объектов поле показывается. Пустой список = для всех.
	ShowForTypes []string `json:"show_for_types"`
	// Отображаемая метка. Пустая метка = скрытое поле (legacy).
	Label string `json:"label,omitempty"`
}

// Kind отображает строку field_type в тип значения.
// Правило унаследовано от сервера: содержит "bool" - булево,
// содержит "i32" или "u32" - число, иначе строка.
func (f Field) Kind() FieldKind {
	switch {
	case strings.Contains(f.FieldType, "bool"):
		return KindBool
	case strings.Contains(f.FieldType, "i32"), strings.Contains(f.FieldType, "u32"):
		return KindInt
	default:
		return KindString
	}
}

// Hidden - поле не показывается в формах (устаревшие sprite_x/sprite_y).
func (f Field) Hidden() bool {
	return f.Label == ""
}

// AppliesTo - применимо ли поле к данному типу объекта.
func (f Field) AppliesTo(objectType string) bool {
	if len(f.ShowForTypes) == 0 {
		return true
	}
	for _, t := range f.ShowForTypes {
		if t == objectType {
			return true
		}
	}
	return false
}

// Schema - полный реестр полей. Загружается один раз при старте,
// перезагрузка заменяет реестр целиком (никаких частичных обновлений).
type Schema struct {
	Fields []Field `json:"fields"`
}

// FieldsFor возвращает поля, применимые к типу объекта, в порядке объявления.
// Порядок определяет и порядок отображения, и порядок вставки дефолтов -
// он обязан быть детерминированным. Ни одно применимое поле не отбрасывается,
// скрытые поля отфильтровывает презентация через Hidden().
func (s *Schema) FieldsFor(objectType string) []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.AppliesTo(objectType) {
			out = append(out, f)
		}
	}
	return out
}

// Find возвращает поле по имени.
func (s *Schema) Find(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFor возвращает имена обязательных полей для типа объекта.
func (s *Schema) RequiredFor(objectType string) []string {
	var out []string
	for _, f := range s.Fields {
		if !f.Optional && f.AppliesTo(objectType) {
			out = append(out, f.Name)
		}
	}
	return out
}
