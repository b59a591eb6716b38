// Package config loads, validates, and writes markout.json, the
// project file that anchors a markout site.
//
// The file lives at the project root; FindProjectRoot walks up from
// any subdirectory to locate it, which lets the CLI run from anywhere
// inside a project. Every field is optional. Missing fields fall back
// to defaults after decoding, so a working project file can be as
// small as:
//
//	{
//	  "name": "blog",
//	  "baseUrl": "https://blog.example.com",
//	  "dev": {"port": 8080},
//	  "publish": {"target": "s3", "bucket": "blog-site"}
//	}
//
// Relative paths in the file (output, assets, catalog) resolve against
// the directory containing markout.json, not the working directory:
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Output:", cfg.OutputPath())
//
// Decode failures surface as coded errors carrying the offending line
// and column so the CLI can point at the broken spot in the file.
package config
