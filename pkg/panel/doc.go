// Package panel is the client-side model of the admin UI.
//
// A Registry maps module keys ("vendors", "daily-closing") to a
// ModuleSchema describing the list and form of that module. Modules
// without declared form sections get them inferred from the first record
// (see InferFields). Records are handled as raw JSON so keys keep the order
// the server sent them in.
//
// Panel ties a Registry to an adminsdk.Session:
//
//	p := panel.New(panel.DefaultRegistry(), sess, logger)
//	_ = p.Select("vendors")
//	st, err := p.Load(ctx)
//	for _, row := range p.Rows("acme") {
//		fmt.Println(panel.Primary(schema.List, row))
//	}
//
// A 401 from any call logs the session out and returns the panel to the
// dashboard.
package panel
