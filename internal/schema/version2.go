package schema

// Version 2 added the calibration bar element and a title on tick sets.
func newSchema2() Schema {
	prev := newSchema1()
	s := newVersion(2, prev)

	s.registry = map[string]*ElementDescriptor{
		tagCalib: {
			Tag:        tagCalib,
			Children:   []string{tagLabel},
			Attributes: join(styleAll, []string{attrLoc, attrLen, attrAuto, attrHoriz, attrCap, attrCapSize}),
			Defaults: map[string]string{
				attrLoc: "50% 50%", attrLen: "10", attrAuto: "true",
				attrHoriz: "true", attrCap: "bracket", attrCapSize: "0.1in",
			},
			Inherited: styleAll,
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagCalib)
		}),
		tagTicks: prev.Descriptor(tagTicks).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrTitle)
			d.Defaults[attrTitle] = ""
		}),
	}

	s.checks = map[string]attrCheck{
		tagCalib + "/" + attrLen:   floatCheck(1e-10, 1e10),
		tagCalib + "/" + attrAuto:  boolCheck(),
		tagCalib + "/" + attrHoriz: boolCheck(),
	}

	return s
}
