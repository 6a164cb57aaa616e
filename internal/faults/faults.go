package faults

import "errors"

// Solo existen dos clases de falla en la capa de datos:
// configuración inválida y fallas del store. "No encontrado"
// NO es un error; los repos devuelven resultado vacío.

// ConfigError indica configuración faltante o inválida para llegar al store.
// Siempre es fatal para la operación que lo levanta.
type ConfigError struct {
	Err error
}

func (configError *ConfigError) Error() string {
	return "config: " + configError.Err.Error()
}

func (configError *ConfigError) Unwrap() error {
	return configError.Err
}

// StoreError envuelve cualquier falla originada en la capa de persistencia
// (conectividad, constraint, timeout). Se propaga sin reintentos.
type StoreError struct {
	Err error
}

func (storeError *StoreError) Error() string {
	return "store: " + storeError.Err.Error()
}

func (storeError *StoreError) Unwrap() error {
	return storeError.Err
}

// Config clasifica un error como falla de configuración.
// Devuelve nil si err es nil para poder usarlo inline en returns.
func Config(err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Err: err}
}

// Store clasifica un error como falla del store.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

// IsConfig reporta si err (o algo en su cadena) es un ConfigError.
func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsStore reporta si err (o algo en su cadena) es un StoreError.
func IsStore(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
