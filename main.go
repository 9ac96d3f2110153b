package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/syifan-m2sim2/dlx-sim/config"
	"github.com/syifan-m2sim2/dlx-sim/parser"
	"github.com/syifan-m2sim2/dlx-sim/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion  = flag.Bool("version", false, "Show version information")
		showHelp     = flag.Bool("help", false, "Show help information")
		maxSteps     = flag.Uint64("max-steps", 0, "Maximum steps before forced halt (0: use config default)")
		memSize      = flag.Uint("mem-size", 0, "Memory block size in bytes (0: use config default)")
		verboseMode  = flag.Bool("verbose", false, "Verbose output")
		dumpRegs     = flag.Bool("dump-registers", false, "Print register state after execution")
		dumpMem      = flag.Bool("dump-memory", false, "Print memory contents after execution")
		dumpProgram  = flag.Bool("dump-program", false, "Print the parsed program and exit without running it")
		configPath   = flag.String("config", "", "Path to a config.toml file (default: platform config path)")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("dlx-sim %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	asmFile := flag.Arg(0)
	source, err := os.ReadFile(asmFile) // #nosec G304 -- user-specified assembly file path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", asmFile, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Parsing %s...\n", asmFile)
	}

	program := parser.Parse(string(source))
	if len(program.Diagnostics) > 0 {
		for _, d := range program.Diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		os.Exit(1)
	}

	size := cfg.Memory.SizeBytes
	if *memSize != 0 {
		size = uint32(*memSize)
	}
	memory := vm.NewMemoryBlock(cfg.Memory.StartAddress, size)

	proc := vm.NewProcessor(memory)
	steps := cfg.Execution.MaxSteps
	if *maxSteps != 0 {
		steps = *maxSteps
	}
	proc.SetMaxNumberOfSteps(int(steps))
	proc.SetTrapOnUnknownLabel(cfg.Execution.TrapOnUnknownLabel)
	proc.LoadProgram(program)

	if *dumpProgram {
		fmt.Print(proc.CurrentProgramDump())
		os.Exit(0)
	}

	if *verboseMode {
		fmt.Println("Running...")
	}
	proc.ExecuteCurrentProgram()

	if exc := proc.GetLastRaisedException(); exc != vm.ExceptionNone {
		fmt.Fprintf(os.Stderr, "Halted with exception: %v (pc=%d)\n", exc, proc.ProgramCounter())
	}

	if *dumpRegs {
		fmt.Print(proc.RegisterDump())
	}
	if *dumpMem {
		fmt.Print(proc.MemoryDump())
	}

	if proc.GetLastRaisedException() != vm.ExceptionNone {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func printHelp() {
	fmt.Printf(`dlx-sim %s

Usage: dlx-sim [options] <assembly-file>

Options:
  -help              Show this help message
  -version           Show version information
  -max-steps N       Maximum steps before forced halt (default: from config)
  -mem-size N        Memory block size in bytes (default: from config)
  -config FILE       Path to a config.toml file
  -verbose           Enable verbose output
  -dump-registers    Print register state after execution
  -dump-memory       Print memory contents after execution
  -dump-program      Print the parsed program and exit without running it

Examples:
  dlx-sim program.asm
  dlx-sim -dump-registers -verbose program.asm
  dlx-sim -dump-program program.asm
`, Version)
}
