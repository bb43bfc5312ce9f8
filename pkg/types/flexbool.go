package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexBool булев флаг, принимающий из JSON значения true/false, 1/0 и "1"/"0".
// Мобильные клиенты исторически присылают флаг unavailable в любом из этих видов,
// поэтому нормализуем на границе и дальше по коду работаем с обычным bool.
type FlexBool bool

// Bool возвращает значение как обычный bool
func (f FlexBool) Bool() bool {
	return bool(f)
}

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch string(trimmed) {
	case "true", "1", `"1"`, `"true"`:
		*f = true
		return nil
	case "false", "0", `"0"`, `"false"`, "null", `""`:
		*f = false
		return nil
	}

	// Числа вида 1.0 или нестандартные значения
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*f = n != 0
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexBool", string(data))
}

// MarshalJSON реализует json.Marshaler — наружу всегда отдаем честный bool
func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
