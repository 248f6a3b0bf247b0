package pack

// Inspection summarizes an encrypted pack as far as it can be read without the key.
type Inspection struct {
	// Header is the validated contents header.
	Header Header

	// Files counts file entries, contents.json excluded.
	Files int

	// Directories counts directory markers.
	Directories int

	// Clear lists files matching the exclusion set, which are stored unencrypted.
	Clear []string

	// Contents is the decrypted contents list, only set by InspectWithKey.
	Contents []ContentEntry
}

// Inspect reads the header and layout of an encrypted pack.
func (p *Processor) Inspect(src []byte) (*Inspection, error) {
	archive, err := ReadArchive(src)
	if err != nil {
		return nil, err
	}

	header, _, err := p.readContents(archive)
	if err != nil {
		return nil, err
	}

	inspection := &Inspection{Header: header}

	for _, entry := range archive.Entries() {
		switch {
		case entry.IsDir():
			inspection.Directories++
		case entry.Path == ContentsPath:
		default:
			inspection.Files++

			if p.IsExcluded(entry.Path) {
				inspection.Clear = append(inspection.Clear, entry.Path)
			}
		}
	}

	return inspection, nil
}

// InspectWithKey is Inspect plus the decrypted contents list.
func (p *Processor) InspectWithKey(src []byte, masterKey string) (*Inspection, error) {
	if err := p.checkKey(masterKey); err != nil {
		return nil, err
	}

	inspection, err := p.Inspect(src)
	if err != nil {
		return nil, err
	}

	archive, err := ReadArchive(src)
	if err != nil {
		return nil, err
	}

	if _, inspection.Contents, err = p.openContents(archive, masterKey); err != nil {
		return nil, err
	}

	return inspection, nil
}
