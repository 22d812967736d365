// Package vocabulary supplies the candidate first- and last-name tokens the
// name pool is drawn from.
//
// Sources:
//   - Default():        the reference 20 first names and 20 last names.
//   - Load(path):       a YAML file {first_names: [...], last_names: [...]}.
//   - FromRandomData(): tokens generated by github.com/Pallinder/go-randomdata.
//   - Open(source,...): picks one of the above from a configuration string.
//
// Every loaded vocabulary is normalised (trimmed, Unicode NFC, de-duplicated
// in first-occurrence order) so visually identical tokens compare equal.
package vocabulary
