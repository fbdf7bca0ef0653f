/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package viperutil

import (
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-aes/bccsp/factory"
	"github.com/hyperledger/fabric-aes/common/flogging"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var logger = flogging.MustGetLogger("viperutil")

// DefaultEnvPrefix prefixes the environment variables that override
// configuration keys.
const DefaultEnvPrefix = "AES"

// ConfigParser holds YAML configuration read from a stream. Every key can be
// overridden from the environment: the key bccsp.sw.workers is read from
// <PREFIX>_BCCSP_SW_WORKERS.
type ConfigParser struct {
	v         *viper.Viper
	envPrefix string
	getenv    envGetter
}

// New creates a ConfigParser using envPrefix for environment overrides. An
// empty prefix selects DefaultEnvPrefix.
func New(envPrefix string) *ConfigParser {
	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	v := viper.New()
	v.SetConfigType("yaml")
	return &ConfigParser{
		v:         v,
		envPrefix: envPrefix,
		getenv:    os.Getenv,
	}
}

// ReadConfig parses the YAML document in and replaces any previously read
// configuration.
func (c *ConfigParser) ReadConfig(in io.Reader) error {
	if err := c.v.ReadConfig(in); err != nil {
		return errors.Wrap(err, "failed reading configuration")
	}
	return nil
}

// Set overrides the value of key. Explicit values take precedence over both
// the YAML document and the environment.
func (c *ConfigParser) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *ConfigParser) getFromEnv(key string) string {
	envKey := c.envPrefix + "_" + key
	envKey = strings.ToUpper(envKey)
	envKey = strings.ReplaceAll(envKey, ".", "_")
	return c.getenv(envKey)
}

type envGetter func(key string) string

// fieldKey is the configuration key for a struct field: the mapstructure tag
// name when present, the field name otherwise.
func fieldKey(f reflect.StructField) string {
	if tag := f.Tag.Get("mapstructure"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}
	return f.Name
}

func getKeysRecursively(base string, getenv envGetter, nodeKeys map[string]interface{}, oType reflect.Type) map[string]interface{} {
	for oType != nil && oType.Kind() == reflect.Ptr {
		oType = oType.Elem()
	}

	subTypes := map[string]reflect.Type{}
	if oType != nil && oType.Kind() == reflect.Struct {
	outer:
		for i := 0; i < oType.NumField(); i++ {
			fieldName := fieldKey(oType.Field(i))
			fieldType := oType.Field(i).Type

			for key := range nodeKeys {
				if strings.EqualFold(fieldName, key) {
					subTypes[key] = fieldType
					continue outer
				}
			}

			subTypes[fieldName] = fieldType
			nodeKeys[fieldName] = nil
		}
	}

	result := make(map[string]interface{})
	for key, val := range nodeKeys {
		fqKey := base + key

		// overwrite val, if an environment is available
		if override := getenv(fqKey); override != "" {
			val = override
		}

		switch val := val.(type) {
		case map[string]interface{}:
			logger.Debugf("Found map[string]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getenv, val, subTypes[key])

		case map[interface{}]interface{}:
			logger.Debugf("Found map[interface{}]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getenv, toMapStringInterface(val), subTypes[key])

		case nil:
			if t := subTypes[key]; t != nil && isStruct(t) {
				if nested := getKeysRecursively(fqKey+".", getenv, map[string]interface{}{}, t); len(nested) > 0 {
					result[key] = nested
				}
			}

		default:
			result[key] = val
		}
	}
	return result
}

func isStruct(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func toMapStringInterface(m map[interface{}]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	for k, v := range m {
		k, ok := k.(string)
		if !ok {
			panic(fmt.Sprintf("Non string %v, %v: key-entry: %v", k, v, k))
		}
		result[k] = v
	}
	return result
}

// customDecodeHook parses strings of the format "[thing1, thing2, thing3]"
// into string slices. Note that whitespace around slice elements is removed.
func customDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	raw := data.(string)
	l := len(raw)
	if l > 1 && raw[0] == '[' && raw[l-1] == ']' {
		slice := strings.Split(raw[1:l-1], ",")
		for i, v := range slice {
			slice[i] = strings.TrimSpace(v)
		}
		return slice, nil
	}

	return data, nil
}

var byteSizeRegexp = regexp.MustCompile(`^(?P<size>[0-9]+)\s*(?i)(?P<unit>(k|m|g))b?$`)

// byteSizeDecodeHook accepts sizes such as 64k, 2MB or 1g for uint32 targets.
func byteSizeDecodeHook(f reflect.Kind, t reflect.Kind, data interface{}) (interface{}, error) {
	if f != reflect.String || t != reflect.Uint32 {
		return data, nil
	}
	raw := data.(string)
	if raw == "" || !byteSizeRegexp.MatchString(raw) {
		return data, nil
	}

	size, err := strconv.ParseUint(byteSizeRegexp.ReplaceAllString(raw, "${size}"), 0, 64)
	if err != nil {
		return data, nil
	}
	switch strings.ToLower(byteSizeRegexp.ReplaceAllString(raw, "${unit}")) {
	case "g":
		size = size << 10
		fallthrough
	case "m":
		size = size << 10
		fallthrough
	case "k":
		size = size << 10
	}
	if size > math.MaxUint32 {
		return size, fmt.Errorf("value '%s' overflows uint32", raw)
	}
	return size, nil
}

// bccspHook decodes factory options on top of factory.GetDefaultOpts so that
// a partial BCCSP section keeps the remaining defaults.
func bccspHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(&factory.FactoryOpts{}) {
		return data, nil
	}

	config := factory.GetDefaultOpts()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Result:           config,
		WeaklyTypedInput: true,
		DecodeHook:       byteSizeDecodeHook,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, errors.Wrap(err, "could not decode bccsp type")
	}

	return config, nil
}

// EnhancedExactUnmarshal decodes the configuration below key into output,
// which must be a pointer to a struct. An empty key decodes the whole
// document. Keys without a matching field are reported as errors, and
// time.Duration, string slice and byte size values are converted.
func (c *ConfigParser) EnhancedExactUnmarshal(key string, output interface{}) error {
	oType := reflect.TypeOf(output)
	if oType == nil || oType.Kind() != reflect.Ptr {
		return errors.Errorf("supplied output argument must be a pointer to a struct but is not pointer")
	}
	eType := oType.Elem()
	if eType.Kind() != reflect.Struct {
		return errors.Errorf("supplied output argument must be a pointer to a struct, but it is pointer to something else")
	}

	base := ""
	baseKeys := map[string]interface{}{}
	settings := c.v.AllSettings()
	if key != "" {
		base = key + "."
		settings = c.v.GetStringMap(key)
	}
	for k, v := range settings {
		baseKeys[k] = v
	}
	leafKeys := getKeysRecursively(base, c.getFromEnv, baseKeys, eType)

	logger.Debugf("%+v", leafKeys)
	config := &mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			bccspHook,
			mapstructure.StringToTimeDurationHookFunc(),
			customDecodeHook,
			byteSizeDecodeHook,
		),
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}
	return decoder.Decode(leafKeys)
}
