package validate

import (
    "bytes"
    "encoding/json"
    "fmt"
    "strings"
    "sync"

    "github.com/santhosh-tekuri/jsonschema/v5"
)

// RecordSchema describes the timeline record written to disk.
const RecordSchema = `{
  "type": "object",
  "required": ["ppt", "history_summary", "events", "slides"],
  "properties": {
    "ppt": {"type": "string", "minLength": 1},
    "history_summary": {"type": "string"},
    "events": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["year", "text"],
        "properties": {
          "year": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1}
        }
      }
    },
    "slides": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "lines"],
        "properties": {
          "title": {"type": ["string", "null"]},
          "lines": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    }
  }
}`

const recordSchemaURL = "timeline-record.schema.json"

var (
    compileOnce sync.Once
    compiled    *jsonschema.Schema
    compileErr  error
)

func recordSchema() (*jsonschema.Schema, error) {
    compileOnce.Do(func() {
        compiler := jsonschema.NewCompiler()
        if err := compiler.AddResource(recordSchemaURL, strings.NewReader(RecordSchema)); err != nil {
            compileErr = fmt.Errorf("add schema: %w", err)
            return
        }
        compiled, compileErr = compiler.Compile(recordSchemaURL)
        if compileErr != nil {
            compileErr = fmt.Errorf("compile schema: %w", compileErr)
        }
    })
    return compiled, compileErr
}

// ValidateRecord checks serialized record bytes against RecordSchema.
func ValidateRecord(data []byte) error {
    schema, err := recordSchema()
    if err != nil {
        return err
    }
    var v any
    dec := json.NewDecoder(bytes.NewReader(data))
    dec.UseNumber()
    if err := dec.Decode(&v); err != nil {
        return fmt.Errorf("unmarshal record: %w", err)
    }
    if err := schema.Validate(v); err != nil {
        return fmt.Errorf("record does not match schema: %w", err)
    }
    return nil
}
